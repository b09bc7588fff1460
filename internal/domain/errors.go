package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAmountMismatch    = errors.New("payment amount does not match order total")
	ErrInvalidState      = errors.New("invalid state")
	ErrAlreadyPaid       = errors.New("order is already paid")
	ErrAlreadyCompleted  = errors.New("payment is already completed")
	ErrConflict          = errors.New("conflicting concurrent operation")
)

// ErrInvalidStatusTransition is returned when a requested order status change
// is not allowed by the lifecycle table. It unwraps to ErrInvalidState.
var ErrInvalidStatusTransition = fmt.Errorf("illegal status transition: %w", ErrInvalidState)

// InsufficientStockError carries enough detail for the caller to know which
// product ran short and by how much.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
