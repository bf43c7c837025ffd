package catalog

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidPrice = errors.New("price must not be negative")
	ErrInvalidStock = errors.New("stock quantity must not be negative")
	ErrEmptyName    = errors.New("product name is required")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Database & Operation Failures --
	ErrInsufficientStock = errors.New("insufficient stock")
)
