package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- Mock repositories ---

type mockItemRepo struct {
	items map[uuid.UUID]*model.Item
}

func (m *mockItemRepo) Create(item *model.Item) error { return nil }
func (m *mockItemRepo) LastCode() (string, error)     { return "", nil }

func (m *mockItemRepo) FindByID(id uuid.UUID) (*model.Item, error) {
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockItemRepo) FindByCode(code string) (*model.Item, error) {
	for _, item := range m.items {
		if item.ItemCode == code {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockInventoryRepo struct {
	records map[string]*model.InventoryRecord
}

func (m *mockInventoryRepo) Create(record *model.InventoryRecord) error         { return nil }
func (m *mockInventoryRepo) FindByID(id uint) (*model.InventoryRecord, error)   { return nil, gorm.ErrRecordNotFound }
func (m *mockInventoryRepo) FindAll(itemCode string) ([]model.InventoryView, error) { return nil, nil }
func (m *mockInventoryRepo) Update(record *model.InventoryRecord) error         { return nil }
func (m *mockInventoryRepo) Delete(id uint) error                               { return nil }

func (m *mockInventoryRepo) FindByItemCode(tx *gorm.DB, itemCode string) (*model.InventoryRecord, error) {
	if record, ok := m.records[itemCode]; ok {
		return record, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInventoryRepo) Reserve(tx *gorm.DB, itemCode string, quantity int) error {
	record, ok := m.records[itemCode]
	if !ok || record.Quantity < quantity {
		return errors.New("insufficient stock")
	}
	record.Quantity -= quantity
	return nil
}

type mockInvoiceRepo struct {
	invoices map[uint]*model.Invoice
}

func (m *mockInvoiceRepo) CreateHeader(tx *gorm.DB, invoice *model.Invoice) error { return nil }
func (m *mockInvoiceRepo) SetInvoiceNumber(tx *gorm.DB, id uint, number string) error {
	return nil
}
func (m *mockInvoiceRepo) CreateLine(tx *gorm.DB, line *model.InvoiceLine) error { return nil }

func (m *mockInvoiceRepo) FindByID(id uint) (*model.Invoice, error) {
	if invoice, ok := m.invoices[id]; ok {
		return invoice, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// --- Fixtures ---

func activeItem(name, code string, price, discount, tax float64, stock bool) *model.Item {
	item := &model.Item{
		ItemCode:        code,
		ItemName:        name,
		SellingPrice:    price,
		DefaultDiscount: discount,
		Tax:             tax,
		IsStockItem:     stock,
		Status:          model.ItemActive,
	}
	item.ID = uuid.New()
	return item
}

func newTestService(items ...*model.Item) *saleService {
	itemRepo := &mockItemRepo{items: map[uuid.UUID]*model.Item{}}
	for _, item := range items {
		itemRepo.items[item.ID] = item
	}
	return &saleService{
		itemRepo:      itemRepo,
		invoiceRepo:   &mockInvoiceRepo{},
		inventoryRepo: &mockInventoryRepo{},
	}
}

// --- priceCart ---

func TestPriceCartEmptyCart(t *testing.T) {
	s := newTestService()
	_, err := s.priceCart(&model.CreateSaleRequest{PaymentMethod: "CASH"})
	if !errors.Is(err, ErrEmptyCart) {
		t.Errorf("err = %v, want ErrEmptyCart", err)
	}
}

func TestPriceCartRejectsBadLines(t *testing.T) {
	item := activeItem("Coffee", "ITM00001", 100, 0, 0, true)
	s := newTestService(item)

	tests := []struct {
		name string
		line model.SaleLineRequest
	}{
		{"zero quantity", model.SaleLineRequest{ItemID: item.ID, Quantity: 0}},
		{"negative quantity", model.SaleLineRequest{ItemID: item.ID, Quantity: -2}},
		{"nil item reference", model.SaleLineRequest{ItemID: uuid.Nil, Quantity: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.priceCart(&model.CreateSaleRequest{Items: []model.SaleLineRequest{tt.line}})
			if !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestPriceCartItemNotFound(t *testing.T) {
	s := newTestService()
	unknown := uuid.New()

	_, err := s.priceCart(&model.CreateSaleRequest{
		Items: []model.SaleLineRequest{{ItemID: unknown, Quantity: 1}},
	})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
	if !strings.Contains(err.Error(), unknown.String()) {
		t.Errorf("error %q does not identify the offending item", err)
	}
}

func TestPriceCartItemInactive(t *testing.T) {
	item := activeItem("Retired", "ITM00009", 10, 0, 0, false)
	item.Status = model.ItemInactive
	s := newTestService(item)

	_, err := s.priceCart(&model.CreateSaleRequest{
		Items: []model.SaleLineRequest{{ItemID: item.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrItemInactive) {
		t.Errorf("err = %v, want ErrItemInactive", err)
	}
}

func TestPriceCartTotalsAndSnapshots(t *testing.T) {
	// 100 x 2 at 10% discount, 5% tax -> 200 / 20 / 9 / 189
	coffee := activeItem("Coffee", "ITM00001", 100, 10, 5, true)
	// 50 x 1, no discount or tax
	water := activeItem("Water", "ITM00002", 50, 0, 0, false)
	s := newTestService(coffee, water)

	sale, err := s.priceCart(&model.CreateSaleRequest{
		Items: []model.SaleLineRequest{
			{ItemID: coffee.ID, Quantity: 2},
			{ItemID: water.ID, Quantity: 1},
		},
		FlatDiscount: 30,
	})
	if err != nil {
		t.Fatalf("priceCart error: %v", err)
	}

	if len(sale.lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(sale.lines))
	}

	first := sale.lines[0].line
	if first.ItemCode != "ITM00001" || first.Quantity != 2 || first.UnitPrice != 100 {
		t.Errorf("line snapshot = %+v", first)
	}
	if first.DiscountAmount != 20 || first.TaxAmount != 9 || first.TotalPrice != 189 {
		t.Errorf("line amounts = %v/%v/%v, want 20/9/189", first.DiscountAmount, first.TaxAmount, first.TotalPrice)
	}
	if !sale.lines[0].isStock {
		t.Error("coffee line should be stock-tracked")
	}
	if sale.lines[1].isStock {
		t.Error("water line should not be stock-tracked")
	}

	// 250 subtotal - 20 item discount - 30 flat + 9 tax
	if sale.totals.GrandTotal != 209 {
		t.Errorf("GrandTotal = %v, want 209", sale.totals.GrandTotal)
	}
}

func TestPriceCartGrandTotalNeverNegative(t *testing.T) {
	item := activeItem("Cheap", "ITM00003", 5, 0, 0, false)
	s := newTestService(item)

	sale, err := s.priceCart(&model.CreateSaleRequest{
		Items:        []model.SaleLineRequest{{ItemID: item.ID, Quantity: 1}},
		FlatDiscount: 1000,
	})
	if err != nil {
		t.Fatalf("priceCart error: %v", err)
	}
	if sale.totals.GrandTotal != 0 {
		t.Errorf("GrandTotal = %v, want 0 (clamped)", sale.totals.GrandTotal)
	}
}

// --- CreateSale validation guard (fails before any persistence) ---

func TestCreateSaleValidation(t *testing.T) {
	item := activeItem("Coffee", "ITM00001", 100, 0, 0, true)
	s := newTestService(item)

	tests := []struct {
		name string
		req  model.CreateSaleRequest
	}{
		{"empty cart", model.CreateSaleRequest{PaymentMethod: "CASH"}},
		{"missing payment method", model.CreateSaleRequest{
			Items: []model.SaleLineRequest{{ItemID: item.ID, Quantity: 1}},
		}},
		{"negative paid amount", model.CreateSaleRequest{
			Items:         []model.SaleLineRequest{{ItemID: item.ID, Quantity: 1}},
			PaymentMethod: "CASH",
			PaidAmount:    -5,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateSale(context.Background(), &tt.req)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

// --- Insufficient stock reporting ---

func TestStockErrorCarriesDetail(t *testing.T) {
	s := newTestService()
	s.inventoryRepo = &mockInventoryRepo{records: map[string]*model.InventoryRecord{
		"ITM00001": {ItemCode: "ITM00001", Quantity: 3},
	}}

	err := s.stockError(nil, &model.InvoiceLine{
		ItemCode: "ITM00001",
		ItemName: "Coffee",
		Quantity: 5,
	})

	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("err type = %T, want *InsufficientStockError", err)
	}
	if stockErr.Requested != 5 || stockErr.Available != 3 {
		t.Errorf("requested/available = %d/%d, want 5/3", stockErr.Requested, stockErr.Available)
	}
	for _, fragment := range []string{"Coffee", "ITM00001", "5", "3"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q missing %q", err.Error(), fragment)
		}
	}
}

// --- GetInvoice ---

func TestGetInvoice(t *testing.T) {
	s := newTestService()
	s.invoiceRepo = &mockInvoiceRepo{invoices: map[uint]*model.Invoice{
		1: {ID: 1, InvoiceNumber: "INV-000001", TotalAmount: 189, Lines: []model.InvoiceLine{{ItemCode: "ITM00001"}}},
	}}

	invoice, err := s.GetInvoice(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetInvoice error: %v", err)
	}
	if invoice.InvoiceNumber != "INV-000001" || len(invoice.Lines) != 1 {
		t.Errorf("invoice = %+v", invoice)
	}

	_, err = s.GetInvoice(context.Background(), 42)
	if !errors.Is(err, ErrInvoiceNotFound) {
		t.Errorf("err = %v, want ErrInvoiceNotFound", err)
	}
}
