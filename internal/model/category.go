package model

type Category struct {
	BaseModel
	CategoryCode    string  `gorm:"type:varchar(20);uniqueIndex;not null" json:"category_code"`
	CategoryName    string  `gorm:"type:varchar(255);not null" json:"category_name" validate:"required"`
	Description     string  `gorm:"type:text" json:"description"`
	DefaultDiscount float64 `gorm:"default:0" json:"default_discount"`
	DefaultTax      float64 `gorm:"default:0" json:"default_tax"`
}
