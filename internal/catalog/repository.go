package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"toystore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, id uint, onlyActive bool) (*Product, error)
	ListActive(ctx context.Context, opts ListOptions) ([]Product, error)
	ListAll(ctx context.Context) ([]Product, error)
	ListRelated(ctx context.Context, categoryID, excludeID uint, limit int) ([]Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, params SaveProductParams) (uint, error)
	Update(ctx context.Context, id uint, params SaveProductParams) error
	Deactivate(ctx context.Context, id uint) error
	DecrementStock(ctx context.Context, id uint, quantity int) error
	CountActive(ctx context.Context) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	p.id,
	p.name,
	p.description,
	p.price,
	p.category_id,
	c.name,
	p.brand,
	p.model,
	p.stock_quantity,
	p.image_url,
	p.is_active,
	p.created_at`

func scanProduct(row interface{ Scan(...any) error }, p *Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.CategoryID,
		&p.CategoryName,
		&p.Brand,
		&p.Model,
		&p.StockQuantity,
		&p.ImageURL,
		&p.IsActive,
		&p.CreatedAt,
	)
}

// GetByID returns nil, nil when no product matches.
func (r *repository) GetByID(ctx context.Context, id uint, onlyActive bool) (*Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	WHERE p.id = $1
	`
	if onlyActive {
		query += " AND p.is_active = TRUE"
	}

	var p Product
	err := scanProduct(r.db.QueryRowContext(ctx, query, id), &p)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) ListActive(ctx context.Context, opts ListOptions) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListActive"),
	)

	start := time.Now()

	query := `
	SELECT ` + productColumns + `
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	WHERE p.is_active = TRUE
	`
	args := []any{}

	if opts.Category != "" {
		args = append(args, opts.Category)
		query += fmt.Sprintf(" AND c.name = $%d", len(args))
	}

	if opts.Search != "" {
		args = append(args, "%"+opts.Search+"%")
		query += fmt.Sprintf(
			" AND (p.name ILIKE $%d OR p.description ILIKE $%d)",
			len(args), len(args),
		)
	}

	switch opts.Sort {
	case "price_low":
		query += " ORDER BY p.price ASC"
	case "price_high":
		query += " ORDER BY p.price DESC"
	case "name":
		query += " ORDER BY p.name ASC"
	default:
		query += " ORDER BY p.created_at DESC"
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("list active products success",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) ListRelated(ctx context.Context, categoryID, excludeID uint, limit int) ([]Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	WHERE p.category_id = $1 AND p.id != $2 AND p.is_active = TRUE
	LIMIT $3
	`

	rows, err := r.db.QueryContext(ctx, query, categoryID, excludeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *repository) Create(ctx context.Context, params SaveProductParams) (uint, error) {
	query := `
	INSERT INTO products (
		name, description, price, category_id, brand, model,
		stock_quantity, image_url
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id
	`

	var id uint
	err := r.db.QueryRowContext(ctx, query,
		params.Name,
		params.Description,
		params.Price,
		params.CategoryID,
		params.Brand,
		params.Model,
		params.StockQuantity,
		params.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) Update(ctx context.Context, id uint, params SaveProductParams) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, category_id = $4,
		    brand = $5, model = $6, stock_quantity = $7, image_url = $8,
		    updated_at = NOW()
		WHERE id = $9
	`,
		params.Name,
		params.Description,
		params.Price,
		params.CategoryID,
		params.Brand,
		params.Model,
		params.StockQuantity,
		params.ImageURL,
		id,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Deactivate flips is_active off. Products are never deleted.
func (r *repository) Deactivate(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// DecrementStock fails with ErrInsufficientStock when the guard clause
// rejects the update. This is the only cross-session mutation in the system
// and relies on the single-statement guard, not on transaction isolation.
func (r *repository) DecrementStock(ctx context.Context, id uint, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity - $1, updated_at = NOW()
		WHERE id = $2 AND stock_quantity >= $1
	`, quantity, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrInsufficientStock
	}

	return nil
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE is_active = TRUE`,
	).Scan(&count)
	return count, err
}
