package repository

import (
	"errors"

	"go-pos-backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindByName(name string) (*model.Category, error)
	// LastCode returns the most recently issued category code by issuance
	// order, or "" when no category exists yet.
	LastCode() (string, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindByName(name string) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "category_name = ?", name).Error
	return &category, err
}

func (r *categoryRepo) LastCode() (string, error) {
	var category model.Category
	err := r.db.Order("created_at DESC").First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return category.CategoryCode, err
}
