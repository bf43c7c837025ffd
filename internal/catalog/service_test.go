package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id uint, onlyActive bool) (*Product, error) {
	args := m.Called(ctx, id, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) ListActive(ctx context.Context, opts ListOptions) ([]Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) ListRelated(ctx context.Context, categoryID, excludeID uint, limit int) ([]Product, error) {
	args := m.Called(ctx, categoryID, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) ListCategories(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Category), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, params SaveProductParams) (uint, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id uint, params SaveProductParams) error {
	args := m.Called(ctx, id, params)
	return args.Error(0)
}

func (m *MockRepository) Deactivate(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) DecrementStock(ctx context.Context, id uint, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_GetProductDetail(t *testing.T) {
	ctx := context.Background()
	catID := uint(2)

	t.Run("Success - With Related", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		p := &Product{ID: 1, Name: "RC Monster Truck", CategoryID: &catID}
		mockRepo.On("GetByID", ctx, uint(1), true).Return(p, nil).Once()
		mockRepo.On("ListRelated", ctx, catID, uint(1), relatedLimit).
			Return([]Product{{ID: 5, Name: "RC Rock Crawler"}}, nil).Once()

		detail, err := svc.GetProductDetail(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "RC Monster Truck", detail.Product.Name)
		assert.Len(t, detail.Related, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - No Category", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, uint(1), true).Return(&Product{ID: 1}, nil).Once()

		detail, err := svc.GetProductDetail(ctx, 1)

		assert.NoError(t, err)
		assert.Empty(t, detail.Related)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Not Found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, uint(9), true).Return(nil, nil).Once()

		_, err := svc.GetProductDetail(ctx, 9)

		assert.Equal(t, ErrProductNotFound, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		opts := ListOptions{Category: "Trucks"}

		mockRepo.On("ListActive", ctx, opts).Return([]Product{{ID: 1}}, nil).Once()
		mockRepo.On("ListCategories", ctx).Return([]Category{{ID: 2, Name: "Trucks"}}, nil).Once()

		products, categories, err := svc.ListProducts(ctx, opts)

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Len(t, categories, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Repo fails", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		dbErr := errors.New("db error")

		mockRepo.On("ListActive", ctx, ListOptions{}).Return(nil, dbErr).Once()

		_, _, err := svc.ListProducts(ctx, ListOptions{})

		assert.Equal(t, dbErr, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_SaveProduct(t *testing.T) {
	ctx := context.Background()
	params := SaveProductParams{Name: "RC Plane", Price: 199.99, StockQuantity: 3}

	t.Run("Create", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, params).Return(uint(11), nil).Once()

		id, err := svc.SaveProduct(ctx, nil, params)

		assert.NoError(t, err)
		assert.Equal(t, uint(11), id)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Update", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		existing := uint(4)

		mockRepo.On("Update", ctx, existing, params).Return(nil).Once()

		id, err := svc.SaveProduct(ctx, &existing, params)

		assert.NoError(t, err)
		assert.Equal(t, existing, id)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Empty Name", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.SaveProduct(ctx, nil, SaveProductParams{Price: 1})

		assert.Equal(t, ErrEmptyName, err)
	})

	t.Run("Error - Negative Price", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.SaveProduct(ctx, nil, SaveProductParams{Name: "x", Price: -1})

		assert.Equal(t, ErrInvalidPrice, err)
	})

	t.Run("Error - Negative Stock", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.SaveProduct(ctx, nil, SaveProductParams{Name: "x", StockQuantity: -2})

		assert.Equal(t, ErrInvalidStock, err)
	})
}

func TestMemoryRepository_StockSemantics(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	id := repo.Seed(Product{Name: "RC Boat", Price: 49.99, StockQuantity: 5, IsActive: true})

	t.Run("Decrement within stock", func(t *testing.T) {
		err := repo.DecrementStock(ctx, id, 3)
		assert.NoError(t, err)

		p, err := repo.GetByID(ctx, id, true)
		assert.NoError(t, err)
		assert.Equal(t, 2, p.StockQuantity)
	})

	t.Run("Decrement beyond stock", func(t *testing.T) {
		err := repo.DecrementStock(ctx, id, 10)
		assert.Equal(t, ErrInsufficientStock, err)
	})

	t.Run("Deactivated product hidden from active lookups", func(t *testing.T) {
		assert.NoError(t, repo.Deactivate(ctx, id))

		p, err := repo.GetByID(ctx, id, true)
		assert.NoError(t, err)
		assert.Nil(t, p)

		p, err = repo.GetByID(ctx, id, false)
		assert.NoError(t, err)
		assert.NotNil(t, p)
	})
}
