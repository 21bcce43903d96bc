package model

import "time"

// InventoryRecord is one-to-one with a stock-tracked Item, keyed by item code.
// Quantity never drops below zero: the only mutation on the sale path is the
// conditional decrement in InventoryRepository.Reserve, and the check
// constraint backs that up against direct adjustments.
type InventoryRecord struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemCode     string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"item_code" validate:"required"`
	Quantity     int       `gorm:"not null;default:0;check:quantity >= 0" json:"quantity" validate:"gte=0"`
	ReorderLevel int       `gorm:"not null;default:10" json:"reorder_level"`
	LastUpdated  time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

func (InventoryRecord) TableName() string {
	return "inventory"
}

// InventoryView joins an inventory row with its item for read endpoints.
type InventoryView struct {
	ID           uint      `json:"id"`
	ItemCode     string    `json:"item_code"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	LastUpdated  time.Time `json:"last_updated"`
	ItemName     string    `json:"item_name"`
	Barcode      string    `json:"barcode"`
	SellingPrice float64   `json:"selling_price"`
	CategoryName string    `json:"category_name"`
}
