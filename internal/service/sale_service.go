package service

import (
	"context"
	"errors"
	"fmt"

	"go-pos-backend/internal/cache"
	"go-pos-backend/internal/codegen"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/pricing"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/logger"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type SaleService interface {
	CreateSale(ctx context.Context, req *model.CreateSaleRequest) (*model.SaleResult, error)
	GetInvoice(ctx context.Context, id uint) (*model.Invoice, error)
}

type saleService struct {
	itemRepo      repository.ItemRepository
	invoiceRepo   repository.InvoiceRepository
	inventoryRepo repository.InventoryRepository
	db            *gorm.DB
	wsHub         *ws.Hub
	invoiceCache  *cache.InvoiceCache
	log           zerolog.Logger
}

func NewSaleService(
	itemRepo repository.ItemRepository,
	invoiceRepo repository.InvoiceRepository,
	inventoryRepo repository.InventoryRepository,
	db *gorm.DB,
	hub *ws.Hub,
	invoiceCache *cache.InvoiceCache,
) SaleService {
	return &saleService{
		itemRepo:      itemRepo,
		invoiceRepo:   invoiceRepo,
		inventoryRepo: inventoryRepo,
		db:            db,
		wsHub:         hub,
		invoiceCache:  invoiceCache,
		log:           logger.WithComponent("sale_service"),
	}
}

// pricedLine pairs a ready-to-persist line snapshot with the flag telling
// the commit step whether stock must be reserved for it.
type pricedLine struct {
	line    model.InvoiceLine
	isStock bool
}

type pricedSale struct {
	lines  []pricedLine
	totals pricing.InvoiceTotals
}

// CreateSale runs the whole sale as one unit of work: validate, price every
// line, then persist header, lines and stock reservations inside a single
// transaction. Any failure after the transaction opens rolls everything
// back; no partial invoice or decrement is ever observable.
func (s *saleService) CreateSale(ctx context.Context, req *model.CreateSaleRequest) (*model.SaleResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, errs[0].FailedField, errs[0].Tag)
	}

	sale, err := s.priceCart(req)
	if err != nil {
		return nil, err
	}

	grandTotal := pricing.Round2(sale.totals.GrandTotal)
	status := model.PaymentPartial
	if sale.totals.Paid(req.PaidAmount) {
		status = model.PaymentPaid
	}

	invoice := &model.Invoice{
		Subtotal:       pricing.Round2(sale.totals.Subtotal),
		TaxAmount:      pricing.Round2(sale.totals.TotalTax),
		DiscountAmount: pricing.Round2(req.FlatDiscount),
		TotalAmount:    grandTotal,
		PaidAmount:     req.PaidAmount,
		PaymentMethod:  req.PaymentMethod,
		PaymentStatus:  status,
		Notes:          req.Notes,
		CreatedBy:      req.CreatedBy,
	}

	// Atomic unit: header, number, lines, reservations. The context is
	// threaded in so an abandoned request rolls back instead of half
	// committing.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.invoiceRepo.CreateHeader(tx, invoice); err != nil {
			return err
		}

		invoice.InvoiceNumber = codegen.FormatInvoiceNumber(invoice.ID)
		if err := s.invoiceRepo.SetInvoiceNumber(tx, invoice.ID, invoice.InvoiceNumber); err != nil {
			return err
		}

		for _, pl := range sale.lines {
			pl.line.InvoiceID = invoice.ID
			if err := s.invoiceRepo.CreateLine(tx, &pl.line); err != nil {
				return err
			}

			if !pl.isStock {
				continue
			}
			if err := s.inventoryRepo.Reserve(tx, pl.line.ItemCode, pl.line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return s.stockError(tx, &pl.line)
				}
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("invoice_number", invoice.InvoiceNumber).
		Float64("total", invoice.TotalAmount).
		Int("lines", len(sale.lines)).
		Msg("sale committed")

	go s.broadcastSale(invoice, sale)

	return &model.SaleResult{
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		TotalAmount:   invoice.TotalAmount,
		BalanceAmount: pricing.Round2(invoice.Balance()),
		PaymentStatus: invoice.PaymentStatus,
	}, nil
}

// priceCart resolves and prices every cart line before any persistent state
// is touched. It fails fast on the first unknown or inactive item.
func (s *saleService) priceCart(req *model.CreateSaleRequest) (*pricedSale, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	sale := &pricedSale{}
	for _, lineReq := range req.Items {
		if lineReq.ItemID == uuid.Nil || lineReq.Quantity <= 0 {
			return nil, fmt.Errorf("%w: every line needs an item reference and a positive quantity", ErrValidation)
		}

		item, err := s.itemRepo.FindByID(lineReq.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrItemNotFound, lineReq.ItemID)
			}
			return nil, err
		}
		if !item.IsActive() {
			return nil, fmt.Errorf("%w: %s (%s)", ErrItemInactive, item.ItemName, item.ItemCode)
		}

		amounts := pricing.PriceLine(item.SellingPrice, lineReq.Quantity, item.DefaultDiscount, item.Tax)
		sale.totals.Accumulate(amounts)

		sale.lines = append(sale.lines, pricedLine{
			isStock: item.IsStockItem,
			line: model.InvoiceLine{
				ItemID:          item.ID,
				ItemName:        item.ItemName,
				ItemCode:        item.ItemCode,
				Barcode:         item.Barcode,
				CategoryName:    item.CategoryName(),
				Quantity:        lineReq.Quantity,
				UnitPrice:       item.SellingPrice,
				DiscountPercent: item.DefaultDiscount,
				TaxPercent:      item.Tax,
				DiscountAmount:  pricing.Round2(amounts.DiscountAmount),
				TaxAmount:       pricing.Round2(amounts.TaxAmount),
				TotalPrice:      pricing.Round2(amounts.Total),
			},
		})
	}

	sale.totals.Finalize(req.FlatDiscount)
	return sale, nil
}

// stockError enriches the bare repository sentinel with the on-hand
// quantity read inside the same transaction.
func (s *saleService) stockError(tx *gorm.DB, line *model.InvoiceLine) error {
	stockErr := &InsufficientStockError{
		ItemCode:  line.ItemCode,
		ItemName:  line.ItemName,
		Requested: line.Quantity,
	}
	if record, err := s.inventoryRepo.FindByItemCode(tx, line.ItemCode); err == nil {
		stockErr.Available = record.Quantity
	}
	return stockErr
}

func (s *saleService) GetInvoice(ctx context.Context, id uint) (*model.Invoice, error) {
	// Committed invoices are immutable, so cached copies never go stale.
	if invoice, ok := s.invoiceCache.Get(ctx, id); ok {
		return invoice, nil
	}

	invoice, err := s.invoiceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrInvoiceNotFound, id)
		}
		return nil, err
	}

	s.invoiceCache.Set(ctx, invoice)
	return invoice, nil
}

func (s *saleService) broadcastSale(invoice *model.Invoice, sale *pricedSale) {
	stock := make([]map[string]interface{}, 0, len(sale.lines))
	for _, pl := range sale.lines {
		if !pl.isStock {
			continue
		}
		stock = append(stock, map[string]interface{}{
			"item_code": pl.line.ItemCode,
			"item_name": pl.line.ItemName,
			"sold":      pl.line.Quantity,
		})
	}

	s.wsHub.BroadcastEvent("sale_committed", map[string]interface{}{
		"invoice_id":     invoice.ID,
		"invoice_number": invoice.InvoiceNumber,
		"total_amount":   invoice.TotalAmount,
		"payment_status": invoice.PaymentStatus,
		"stock":          stock,
		"message":        fmt.Sprintf("Sale %s committed for %.2f", invoice.InvoiceNumber, invoice.TotalAmount),
	})
}
