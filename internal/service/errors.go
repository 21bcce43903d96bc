package service

import (
	"errors"
	"fmt"
)

// Client-side failures. Handlers map these to 4xx; anything else that
// escapes the sale workflow is a storage fault and maps to 5xx.
var (
	ErrValidation      = errors.New("validation failed")
	ErrEmptyCart       = errors.New("no items in the sale")
	ErrItemNotFound    = errors.New("item not found")
	ErrItemInactive    = errors.New("item is inactive")
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// InsufficientStockError carries enough detail for the caller to act on:
// which item, how much was asked, how much is on hand.
type InsufficientStockError struct {
	ItemCode  string
	ItemName  string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %q (%s): requested %d, available %d",
		e.ItemName, e.ItemCode, e.Requested, e.Available)
}
