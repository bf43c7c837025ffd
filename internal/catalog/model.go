package catalog

import "time"

type Product struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	CategoryID    *uint     `json:"category_id,omitempty"`
	CategoryName  *string   `json:"category_name,omitempty"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	StockQuantity int       `json:"stock_quantity"`
	ImageURL      string    `json:"image_url"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ListOptions narrows the active-product listing.
type ListOptions struct {
	Category string
	Search   string
	Sort     string // price_low | price_high | name | "" (newest)
}

type SaveProductParams struct {
	Name          string
	Description   string
	Price         float64
	CategoryID    *uint
	Brand         string
	Model         string
	StockQuantity int
	ImageURL      string
}

// ProductDetail is the detail-page view: the product plus up to four
// related products from the same category.
type ProductDetail struct {
	Product Product   `json:"product"`
	Related []Product `json:"related"`
}
