package order

import (
	"context"
	"database/sql"

	"toystore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order, items []OrderItem) (uint, error)
	GetOrders(ctx context.Context) ([]Order, error)
	GetOrderDetail(ctx context.Context, orderID uint) (*Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status OrderStatus) error
	CountOrders(ctx context.Context) (int64, error)
	Revenue(ctx context.Context) (float64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrderTx persists the order and every line item in one transaction:
// either all rows exist afterwards or none do.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order, items []OrderItem) (uint, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.String("order_number", o.OrderNumber),
		zap.Int("item_count", len(items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return 0, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	var orderID uint
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			order_number, customer_name, customer_email, customer_phone,
			shipping_address, city, state, zip_code,
			total_amount, payment_method, status, session_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id
	`,
		o.OrderNumber,
		o.CustomerName,
		o.CustomerEmail,
		o.CustomerPhone,
		o.ShippingAddress,
		o.City,
		o.State,
		o.ZipCode,
		o.TotalAmount,
		o.PaymentMethod,
		o.Status,
		o.SessionID,
	).Scan(&orderID)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return 0, err
	}

	for i, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
		`,
			orderID,
			item.ProductID,
			item.Quantity,
			item.Price,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.Uint("product_id", item.ProductID),
				zap.Error(err),
			)
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return 0, err
	}

	committed = true
	log.Info("order transaction committed",
		zap.Uint("order_id", orderID),
		zap.Float64("total_amount", o.TotalAmount),
	)

	return orderID, nil
}

func (r *repository) GetOrders(ctx context.Context) ([]Order, error) {
	query := `
		SELECT
			id, order_number, customer_name, customer_email,
			total_amount, payment_method, status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.OrderNumber,
			&o.CustomerName,
			&o.CustomerEmail,
			&o.TotalAmount,
			&o.PaymentMethod,
			&o.Status,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT
			id, order_number, customer_name, customer_email, customer_phone,
			shipping_address, city, state, zip_code,
			total_amount, payment_method, status, session_id, created_at, updated_at
		FROM orders WHERE id = $1
	`, orderID).Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.CustomerPhone,
		&o.ShippingAddress,
		&o.City,
		&o.State,
		&o.ZipCode,
		&o.TotalAmount,
		&o.PaymentMethod,
		&o.Status,
		&o.SessionID,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.product_id, oi.quantity, oi.price, p.name
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.Price, &item.ProductName); err != nil {
			return nil, err
		}
		item.OrderID = o.ID
		o.Items = append(o.Items, item)
	}

	return &o, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, orderID uint, status OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, orderID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *repository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, err
}

func (r *repository) Revenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders`,
	).Scan(&revenue)
	return revenue, err
}
