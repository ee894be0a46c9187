package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUserExists is returned when a registration email is already taken.
	ErrUserExists = errors.New("User already exists")

	// ErrSweetExists is returned when a catalog name is already taken.
	ErrSweetExists = errors.New("Failed to add sweet. Sweet name might already exist.")
)

// InsufficientStockError rejects a purchase that exceeds current stock.
// Available is the stock level observed inside the purchase transaction.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Only %d items available in stock", e.Available)
}
