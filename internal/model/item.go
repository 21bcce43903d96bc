package model

import "github.com/google/uuid"

type ItemStatus string

const (
	ItemActive   ItemStatus = "active"
	ItemInactive ItemStatus = "inactive"
)

type Item struct {
	BaseModel
	ItemCode        string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"item_code"`
	ItemName        string     `gorm:"type:varchar(255);not null" json:"item_name" validate:"required"`
	Barcode         string     `gorm:"type:varchar(50)" json:"barcode"`
	CategoryID      *uuid.UUID `gorm:"type:uuid" json:"category_id"`
	Category        *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`
	CostPrice       float64    `gorm:"default:0" json:"cost_price"`
	SellingPrice    float64    `gorm:"default:0" json:"selling_price" validate:"gte=0"`
	DefaultDiscount float64    `gorm:"default:0" json:"default_discount" validate:"gte=0,lte=100"`
	Tax             float64    `gorm:"default:0" json:"tax" validate:"gte=0,lte=100"`
	IsStockItem     bool       `gorm:"default:false" json:"is_stock_item"`
	Status          ItemStatus `gorm:"type:varchar(10);default:'active'" json:"status"`
}

// IsActive reports whether the item can still be sold.
func (i *Item) IsActive() bool {
	return i.Status == ItemActive
}

// CategoryName returns the category name snapshot for invoice lines.
// Empty when the item has no category preloaded.
func (i *Item) CategoryName() string {
	if i.Category == nil {
		return ""
	}
	return i.Category.CategoryName
}
