package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPartial PaymentStatus = "PARTIAL"
)

// Invoice is append-only: once committed it is never updated, so its lines
// are a safe historical record regardless of later item edits.
//
// The integer primary key doubles as the invoice-number source: the number
// is derived from the storage-assigned id inside the same transaction, so
// concurrent checkouts can never issue duplicates.
type Invoice struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceNumber  string        `gorm:"type:varchar(20);uniqueIndex" json:"invoice_number"`
	InvoiceDate    time.Time     `gorm:"autoCreateTime" json:"invoice_date"`
	Subtotal       float64       `gorm:"not null" json:"subtotal"`
	TaxAmount      float64       `gorm:"not null" json:"tax_amount"`
	DiscountAmount float64       `gorm:"not null" json:"discount_amount"` // flat bill discount
	TotalAmount    float64       `gorm:"not null" json:"total_amount"`
	PaidAmount     float64       `gorm:"not null;default:0" json:"paid_amount"`
	PaymentMethod  string        `gorm:"type:varchar(20)" json:"payment_method"`
	PaymentStatus  PaymentStatus `gorm:"type:varchar(10);not null" json:"payment_status"`
	Notes          string        `gorm:"type:text" json:"notes"`
	CreatedBy      string        `gorm:"type:varchar(255)" json:"created_by"`
	CreatedAt      time.Time     `json:"created_at"`

	// Lines cannot outlive their invoice
	Lines []InvoiceLine `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// Balance is total minus paid. Negative means change due; display policy
// is the caller's concern.
func (inv *Invoice) Balance() float64 {
	return inv.TotalAmount - inv.PaidAmount
}

// InvoiceLine snapshots the sold item's identity and pricing at time of
// sale, decoupled from the live Item record.
type InvoiceLine struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID       uint      `gorm:"not null;index" json:"invoice_id"`
	ItemID          uuid.UUID `gorm:"type:uuid;not null" json:"item_id"`
	ItemName        string    `gorm:"type:varchar(255);not null" json:"item_name"`
	ItemCode        string    `gorm:"type:varchar(20);not null" json:"item_code"`
	Barcode         string    `gorm:"type:varchar(50)" json:"barcode"`
	CategoryName    string    `gorm:"type:varchar(255)" json:"category_name"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	UnitPrice       float64   `gorm:"not null" json:"unit_price"`
	DiscountPercent float64   `gorm:"not null;default:0" json:"discount_percent"`
	TaxPercent      float64   `gorm:"not null;default:0" json:"tax_percent"`
	DiscountAmount  float64   `gorm:"not null;default:0" json:"discount_amount"`
	TaxAmount       float64   `gorm:"not null;default:0" json:"tax_amount"`
	TotalPrice      float64   `gorm:"not null" json:"total_price"`
}

func (InvoiceLine) TableName() string {
	return "invoiceitems"
}
