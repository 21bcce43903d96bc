package repository

import (
	"errors"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(item *model.Item) error
	FindByID(id uuid.UUID) (*model.Item, error)
	FindByCode(code string) (*model.Item, error)
	// LastCode returns the most recently issued item code by issuance
	// order, or "" when no item exists yet.
	LastCode() (string, error)
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

func (r *itemRepo) Create(item *model.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepo) FindByID(id uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := r.db.Preload("Category").First(&item, "id = ?", id).Error
	return &item, err
}

func (r *itemRepo) FindByCode(code string) (*model.Item, error) {
	var item model.Item
	err := r.db.Preload("Category").First(&item, "item_code = ?", code).Error
	return &item, err
}

func (r *itemRepo) LastCode() (string, error) {
	var item model.Item
	err := r.db.Order("created_at DESC").First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return item.ItemCode, err
}
