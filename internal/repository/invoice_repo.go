package repository

import (
	"go-pos-backend/internal/model"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	// CreateHeader inserts the invoice row inside tx and fills in the
	// storage-assigned id, which is the invoice-number source.
	CreateHeader(tx *gorm.DB, invoice *model.Invoice) error
	SetInvoiceNumber(tx *gorm.DB, id uint, number string) error
	CreateLine(tx *gorm.DB, line *model.InvoiceLine) error
	FindByID(id uint) (*model.Invoice, error)
}

type invoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db}
}

func (r *invoiceRepo) CreateHeader(tx *gorm.DB, invoice *model.Invoice) error {
	return tx.Create(invoice).Error
}

func (r *invoiceRepo) SetInvoiceNumber(tx *gorm.DB, id uint, number string) error {
	return tx.Model(&model.Invoice{}).
		Where("id = ?", id).
		Update("invoice_number", number).Error
}

func (r *invoiceRepo) CreateLine(tx *gorm.DB, line *model.InvoiceLine) error {
	return tx.Create(line).Error
}

func (r *invoiceRepo) FindByID(id uint) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoiceitems.id ASC")
		}).
		First(&invoice, "id = ?", id).Error
	return &invoice, err
}
