package service

import (
	"errors"
	"fmt"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/logger"
	"go-pos-backend/pkg/validator"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrInventoryNotFound = errors.New("inventory record not found")
	ErrInventoryExists   = errors.New("inventory record already exists for this item")
)

// InventoryAdjustment is a direct quantity/reorder-level edit, outside the
// sale path. Nil fields are left untouched.
type InventoryAdjustment struct {
	Quantity     *int `json:"quantity" validate:"omitempty,gte=0"`
	ReorderLevel *int `json:"reorder_level" validate:"omitempty,gte=0"`
}

type InventoryService interface {
	List(itemCode string) ([]model.InventoryView, error)
	CreateRecord(record *model.InventoryRecord) error
	Adjust(id uint, adj *InventoryAdjustment) (*model.InventoryRecord, error)
	Remove(id uint) error
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	itemRepo      repository.ItemRepository
	wsHub         *ws.Hub
	log           zerolog.Logger
}

func NewInventoryService(invRepo repository.InventoryRepository, itemRepo repository.ItemRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		inventoryRepo: invRepo,
		itemRepo:      itemRepo,
		wsHub:         hub,
		log:           logger.WithComponent("inventory_service"),
	}
}

func (s *inventoryService) List(itemCode string) ([]model.InventoryView, error) {
	return s.inventoryRepo.FindAll(itemCode)
}

func (s *inventoryService) CreateRecord(record *model.InventoryRecord) error {
	if errs := validator.ValidateStruct(record); len(errs) > 0 {
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, errs[0].FailedField, errs[0].Tag)
	}

	if _, err := s.itemRepo.FindByCode(record.ItemCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrItemNotFound, record.ItemCode)
		}
		return err
	}

	existing, err := s.inventoryRepo.FindByItemCode(nil, record.ItemCode)
	if err == nil && existing.ID != 0 {
		return ErrInventoryExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.inventoryRepo.Create(record)
}

func (s *inventoryService) Adjust(id uint, adj *InventoryAdjustment) (*model.InventoryRecord, error) {
	if errs := validator.ValidateStruct(adj); len(errs) > 0 {
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, errs[0].FailedField, errs[0].Tag)
	}
	if adj.Quantity == nil && adj.ReorderLevel == nil {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	record, err := s.inventoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrInventoryNotFound, id)
		}
		return nil, err
	}

	oldQuantity := record.Quantity
	if adj.Quantity != nil {
		record.Quantity = *adj.Quantity
	}
	if adj.ReorderLevel != nil {
		record.ReorderLevel = *adj.ReorderLevel
	}

	if err := s.inventoryRepo.Update(record); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("item_code", record.ItemCode).
		Int("old_quantity", oldQuantity).
		Int("new_quantity", record.Quantity).
		Msg("inventory adjusted")

	go s.wsHub.BroadcastEvent("stock_update", map[string]interface{}{
		"action":       "inventory_adjusted",
		"item_code":    record.ItemCode,
		"old_quantity": oldQuantity,
		"new_quantity": record.Quantity,
	})

	return record, nil
}

// Remove deletes the inventory record, used when an item is deactivated
// or un-flagged as stock-tracked.
func (s *inventoryService) Remove(id uint) error {
	if _, err := s.inventoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %d", ErrInventoryNotFound, id)
		}
		return err
	}
	return s.inventoryRepo.Delete(id)
}
