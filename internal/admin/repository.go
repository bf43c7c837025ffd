package admin

import (
	"context"
	"database/sql"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
	Create(ctx context.Context, username, email, hashedPassword string) (uint, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetByEmail returns nil, nil when no admin matches.
func (r *repository) GetByEmail(ctx context.Context, email string) (*AdminUser, error) {
	var a AdminUser
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, email, password, created_at
		FROM admin_users WHERE email = $1
	`, email).Scan(&a.ID, &a.Username, &a.Email, &a.Password, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) Create(ctx context.Context, username, email, hashedPassword string) (uint, error) {
	var id uint
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO admin_users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`, username, email, hashedPassword).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}
