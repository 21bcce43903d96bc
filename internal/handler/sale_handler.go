package handler

import (
	"errors"
	"strconv"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

// statusForSaleError maps the sale error taxonomy to HTTP codes. Client
// mistakes are 4xx, out-of-stock is a 409 so callers can distinguish it,
// everything else is a storage fault.
func statusForSaleError(err error) int {
	var stockErr *service.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrItemInactive):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var req model.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.CreateSale(c.Context(), &req)
	if err != nil {
		status := statusForSaleError(err)
		if status == fiber.StatusInternalServerError {
			return c.Status(status).JSON(fiber.Map{"error": "Failed to create sale"})
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(result)
}

func (h *SaleHandler) GetInvoice(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	invoice, err := h.service.GetInvoice(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch invoice"})
	}

	return c.JSON(invoice)
}
