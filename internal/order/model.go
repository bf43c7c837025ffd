package order

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// Order is the immutable record of a completed checkout. Only Status may
// change after creation.
type Order struct {
	ID              uint        `json:"id"`
	OrderNumber     string      `json:"order_number"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	ShippingAddress string      `json:"shipping_address"`
	City            string      `json:"city"`
	State           string      `json:"state"`
	ZipCode         string      `json:"zip_code"`
	TotalAmount     float64     `json:"total_amount"`
	PaymentMethod   string      `json:"payment_method"`
	Status          OrderStatus `json:"status"`
	SessionID       string      `json:"session_id"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Items           []OrderItem `json:"items,omitempty"`
}

// OrderItem captures the unit price at order time; later catalog price
// changes never touch it.
type OrderItem struct {
	ID          uint    `json:"id"`
	OrderID     uint    `json:"order_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// CheckoutInput carries the customer/shipping fields supplied at checkout,
// bound from either JSON or form-encoded bodies. The total is always
// computed server-side.
type CheckoutInput struct {
	CustomerName  string `json:"customer_name" form:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" form:"customer_email"`
	CustomerPhone string `json:"customer_phone" form:"customer_phone"`
	Address       string `json:"address" form:"address"`
	City          string `json:"city" form:"city"`
	State         string `json:"state" form:"state"`
	ZipCode       string `json:"zip_code" form:"zip_code"`
	PaymentMethod string `json:"payment_method" form:"payment_method"`
}

type Confirmation struct {
	OrderID      uint    `json:"order_id"`
	OrderNumber  string  `json:"order_number"`
	Total        float64 `json:"total"`
	CustomerName string  `json:"customer_name"`
}

// DashboardStats backs the admin landing page.
type DashboardStats struct {
	Orders   int64   `json:"orders"`
	Products int64   `json:"products"`
	Revenue  float64 `json:"revenue"`
}
