package model

import "github.com/google/uuid"

// SaleLineRequest references an item by id with a requested quantity.
type SaleLineRequest struct {
	ItemID   uuid.UUID `json:"item_id" validate:"uuid_required"`
	Quantity int       `json:"quantity" validate:"required,gt=0"`
}

// CreateSaleRequest is the POST /sales payload.
type CreateSaleRequest struct {
	Items         []SaleLineRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" validate:"required"`
	PaidAmount    float64           `json:"paid_amount" validate:"gte=0"`
	FlatDiscount  float64           `json:"flat_discount" validate:"gte=0"`
	Notes         string            `json:"notes"`
	CreatedBy     string            `json:"created_by"`
}

// SaleResult is returned to the caller after a successful commit.
type SaleResult struct {
	InvoiceID     uint          `json:"invoice_id"`
	InvoiceNumber string        `json:"invoice_number"`
	TotalAmount   float64       `json:"total_amount"`
	BalanceAmount float64       `json:"balance_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}
