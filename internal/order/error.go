package order

import "errors"

var (
	// -- Checkout preconditions --
	ErrEmptyCart       = errors.New("cart is empty")
	ErrSessionRequired = errors.New("session id is required")

	// -- Stock re-validation --
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrProductNotFound   = errors.New("product not found")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)
