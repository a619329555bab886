package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("access denied")
	ErrConflict          = errors.New("conflict with current state")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNoValidItems      = errors.New("no valid items")
)

// InsufficientStockError names the product that could not be sold and how many
// units it actually has. errors.Is(err, ErrInsufficientStock) matches it.
type InsufficientStockError struct {
	ProductName string
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s. Available: %d", e.ProductName, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
