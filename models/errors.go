package models

import (
	"errors"
	"fmt"
)

// Error kinds recognized by the HTTP response layer. Repositories wrap
// ErrNotFound per entity so callers can still log a precise message.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientStock = errors.New("insufficient stock")
)

var (
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
	ErrMessageNotFound  = fmt.Errorf("contact message %w", ErrNotFound)
	ErrReviewNotFound   = fmt.Errorf("review %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)

	// ErrCustomerHasOrders is returned when deleting a customer that
	// orders still reference.
	ErrCustomerHasOrders = fmt.Errorf("%w: customer has orders", ErrConflict)
)
