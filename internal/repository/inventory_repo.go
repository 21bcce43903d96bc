package repository

import (
	"errors"
	"time"

	"go-pos-backend/internal/model"

	"gorm.io/gorm"
)

// ErrInsufficientStock is reported when the conditional decrement matched
// no row: either the record is missing or on-hand quantity is too low.
var ErrInsufficientStock = errors.New("insufficient stock")

type InventoryRepository interface {
	Create(record *model.InventoryRecord) error
	FindByID(id uint) (*model.InventoryRecord, error)
	FindByItemCode(tx *gorm.DB, itemCode string) (*model.InventoryRecord, error)
	FindAll(itemCode string) ([]model.InventoryView, error)
	Update(record *model.InventoryRecord) error
	Delete(id uint) error

	// Reserve atomically decrements on-hand quantity inside tx. The check
	// and the write are one conditional UPDATE evaluated under row-level
	// locking, so two concurrent sales can never both take the last unit.
	Reserve(tx *gorm.DB, itemCode string, quantity int) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) Create(record *model.InventoryRecord) error {
	return r.db.Create(record).Error
}

func (r *inventoryRepo) FindByID(id uint) (*model.InventoryRecord, error) {
	var record model.InventoryRecord
	err := r.db.First(&record, "id = ?", id).Error
	return &record, err
}

// FindByItemCode accepts a tx so callers inside a transaction read their
// own writes; pass nil to read through the base connection.
func (r *inventoryRepo) FindByItemCode(tx *gorm.DB, itemCode string) (*model.InventoryRecord, error) {
	if tx == nil {
		tx = r.db
	}
	var record model.InventoryRecord
	err := tx.First(&record, "item_code = ?", itemCode).Error
	return &record, err
}

func (r *inventoryRepo) FindAll(itemCode string) ([]model.InventoryView, error) {
	var views []model.InventoryView

	query := r.db.Model(&model.InventoryRecord{}).
		Select(`inventory.id, inventory.item_code, inventory.quantity, inventory.reorder_level, inventory.last_updated,
			items.item_name, items.barcode, items.selling_price,
			COALESCE(categories.category_name, '') as category_name`).
		Joins("LEFT JOIN items ON items.item_code = inventory.item_code").
		Joins("LEFT JOIN categories ON categories.id = items.category_id").
		Order("inventory.last_updated DESC")

	if itemCode != "" {
		query = query.Where("inventory.item_code = ?", itemCode)
	}

	err := query.Scan(&views).Error
	return views, err
}

func (r *inventoryRepo) Update(record *model.InventoryRecord) error {
	return r.db.Save(record).Error
}

func (r *inventoryRepo) Delete(id uint) error {
	return r.db.Delete(&model.InventoryRecord{}, "id = ?", id).Error
}

func (r *inventoryRepo) Reserve(tx *gorm.DB, itemCode string, quantity int) error {
	res := tx.Model(&model.InventoryRecord{}).
		Where("item_code = ? AND quantity >= ?", itemCode, quantity).
		Updates(map[string]interface{}{
			"quantity":     gorm.Expr("quantity - ?", quantity),
			"last_updated": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
