package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AdminUser), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, username, email, hashedPassword string) (uint, error) {
	args := m.Called(ctx, username, email, hashedPassword)
	return args.Get(0).(uint), args.Error(1)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	ctx := context.Background()

	hash, _ := HashPassword("correct-horse")
	stored := &AdminUser{ID: 1, Username: "admin", Email: "admin@example.com", Password: hash}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByEmail", ctx, "admin@example.com").Return(stored, nil)

		svc := NewService(repo)
		token, a, err := svc.Login(ctx, "admin@example.com", "correct-horse")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), a.ID)

		claims, err := ParseJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

		svc := NewService(repo)
		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByEmail", ctx, "admin@example.com").Return(stored, nil)

		svc := NewService(repo)
		_, _, err := svc.Login(ctx, "admin@example.com", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByEmail", ctx, "admin@example.com").Return(nil, errors.New("db down"))

		svc := NewService(repo)
		_, _, err := svc.Login(ctx, "admin@example.com", "correct-horse")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, "admin", "admin@example.com", mock.AnythingOfType("string")).
			Return(uint(1), nil)

		svc := NewService(repo)
		id, err := svc.Register(ctx, "admin", "admin@example.com", "correct-horse")

		assert.NoError(t, err)
		assert.Equal(t, uint(1), id)

		// The stored password is a bcrypt hash, never the plaintext.
		hashed := repo.Calls[0].Arguments.String(3)
		assert.NotEqual(t, "correct-horse", hashed)
		assert.True(t, CheckPasswordHash("correct-horse", hashed))
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, "admin", "admin@example.com", mock.AnythingOfType("string")).
			Return(uint(0), errors.New(`pq: duplicate key value violates unique constraint "admin_users_username_key"`))

		svc := NewService(repo)
		_, err := svc.Register(ctx, "admin", "admin@example.com", "correct-horse")

		assert.ErrorIs(t, err, ErrUsernameExists)
	})
}
