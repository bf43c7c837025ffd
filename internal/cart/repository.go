package cart

import (
	"context"
	"database/sql"

	"toystore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetItem(ctx context.Context, sessionID string, productID uint) (*CartItem, error)
	CreateItem(ctx context.Context, params AddItemParams) (*CartItem, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID uint, quantity int) error
	Remove(ctx context.Context, sessionID string, productID uint) error
	Clear(ctx context.Context, sessionID string) error
	GetLines(ctx context.Context, sessionID string) ([]CartLine, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetItem returns nil, nil when the session has no line for the product.
func (r *repository) GetItem(ctx context.Context, sessionID string, productID uint) (*CartItem, error) {
	query := `
	SELECT
		id,
		session_id,
		product_id,
		quantity,
		created_at,
		updated_at
	FROM cart_items
	WHERE session_id = $1 AND product_id = $2
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, sessionID, productID).Scan(
		&item.ID,
		&item.SessionID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *repository) CreateItem(ctx context.Context, params AddItemParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateItem"),
		zap.String("session_id", params.SessionID),
		zap.Uint("product_id", params.ProductID),
	)

	query := `
	INSERT INTO cart_items (
		session_id,
		product_id,
		quantity
	)
	VALUES ($1, $2, $3)
	RETURNING
		id,
		session_id,
		product_id,
		quantity,
		created_at,
		updated_at
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query,
		params.SessionID,
		params.ProductID,
		params.Quantity,
	).Scan(
		&item.ID,
		&item.SessionID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create cart item", zap.Error(err))
		return nil, err
	}

	log.Debug("cart item created", zap.Uint("cart_item_id", item.ID))

	return &item, nil
}

func (r *repository) UpdateQuantity(ctx context.Context, sessionID string, productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE session_id = $2 AND product_id = $3
	`, quantity, sessionID, productID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

func (r *repository) Remove(ctx context.Context, sessionID string, productID uint) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE session_id = $1 AND product_id = $2
	`, sessionID, productID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// Clear is idempotent: clearing an already-empty cart is not an error.
func (r *repository) Clear(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE session_id = $1
	`, sessionID)
	return err
}

// GetLines joins cart items with the live catalog. The inner join on active
// products silently drops lines whose product was deactivated.
func (r *repository) GetLines(ctx context.Context, sessionID string) ([]CartLine, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetLines"),
		zap.String("session_id", sessionID),
	)

	query := `
	SELECT
		ci.product_id,
		p.name,
		p.price,
		p.image_url,
		p.stock_quantity,
		ci.quantity,
		(ci.quantity * p.price) AS subtotal
	FROM cart_items ci
	JOIN products p ON ci.product_id = p.id AND p.is_active = TRUE
	WHERE ci.session_id = $1
	ORDER BY ci.created_at
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lines []CartLine
	for rows.Next() {
		var line CartLine
		if err := rows.Scan(
			&line.ProductID,
			&line.Name,
			&line.Price,
			&line.ImageURL,
			&line.StockQuantity,
			&line.Quantity,
			&line.Subtotal,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return lines, nil
}
