package cart

import "time"

// CartItem is one (session, product) line. The (SessionID, ProductID) pair is
// unique; adding the same product again merges by summing quantities.
type CartItem struct {
	ID        uint      `json:"id"`
	SessionID string    `json:"session_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is a cart item joined with the current catalog row. Lines whose
// product is gone or deactivated never reach callers.
type CartLine struct {
	ProductID     uint    `json:"product_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"image_url"`
	StockQuantity int     `json:"stock_quantity"`
	Quantity      int     `json:"quantity"`
	Subtotal      float64 `json:"subtotal"`
}

type CartView struct {
	Lines []CartLine `json:"items"`
	Total float64    `json:"total"`
}

type AddItemParams struct {
	SessionID string
	ProductID uint
	Quantity  int
}

type UpdateItemParams struct {
	SessionID string
	ProductID uint
	Quantity  int
}
