package admin

import (
	"context"
	"strings"

	"toystore-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, email, password string) (string, *AdminUser, error)
	Register(ctx context.Context, username, email, password string) (uint, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Login verifies credentials against the stored bcrypt hash and returns a
// signed JWT. A missing account and a wrong password report the same error.
func (s *service) Login(ctx context.Context, email, password string) (string, *AdminUser, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if a == nil {
		log.Warn("login attempt for unknown email")
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, a.Password) {
		log.Warn("login attempt with wrong password", zap.Uint("admin_id", a.ID))
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(a.ID, a.Username, a.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.Uint("admin_id", a.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("admin logged in", zap.Uint("admin_id", a.ID))

	return token, a, nil
}

func (s *service) Register(ctx context.Context, username, email, password string) (uint, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return 0, err
	}

	id, err := s.repo.Create(ctx, username, email, hashed)
	if err != nil {
		if strings.Contains(err.Error(), "admin_users_username_key") {
			return 0, ErrUsernameExists
		}
		log.Error("failed to create admin", zap.Error(err))
		return 0, err
	}

	return id, nil
}
