package handler

import (
	"errors"
	"strconv"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	views, err := h.service.List(c.Query("item_code"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inventory"})
	}
	return c.JSON(views)
}

func (h *InventoryHandler) CreateInventory(c *fiber.Ctx) error {
	var record model.InventoryRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if record.ReorderLevel == 0 {
		record.ReorderLevel = 10
	}

	if err := h.service.CreateRecord(&record); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation),
			errors.Is(err, service.ErrItemNotFound),
			errors.Is(err, service.ErrInventoryExists):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create inventory"})
		}
	}

	return c.Status(201).JSON(fiber.Map{"message": "Inventory record created", "inventory_id": record.ID})
}

func (h *InventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid inventory ID"})
	}

	var adj service.InventoryAdjustment
	if err := c.BodyParser(&adj); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	record, err := h.service.Adjust(uint(id), &adj)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInventoryNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrValidation):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update inventory"})
		}
	}

	return c.JSON(fiber.Map{"message": "Inventory updated successfully", "data": record})
}

func (h *InventoryHandler) DeleteInventory(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid inventory ID"})
	}

	if err := h.service.Remove(uint(id)); err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete inventory"})
	}

	return c.JSON(fiber.Map{"message": "Inventory record deleted"})
}
