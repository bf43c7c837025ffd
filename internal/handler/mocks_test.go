package handler

import (
	"context"

	"toystore-be/internal/admin"
	"toystore-be/internal/cart"
	"toystore-be/internal/catalog"
	"toystore-be/internal/order"

	"github.com/stretchr/testify/mock"
)

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddItem(ctx context.Context, params cart.AddItemParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockCartService) UpdateItem(ctx context.Context, params cart.UpdateItemParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID string, productID uint) error {
	args := m.Called(ctx, sessionID, productID)
	return args.Error(0)
}

func (m *MockCartService) View(ctx context.Context, sessionID string) (*cart.CartView, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartView), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, sessionID string, input order.CheckoutInput) (*order.Confirmation, error) {
	args := m.Called(ctx, sessionID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Confirmation), args.Error(1)
}

func (m *MockOrderService) GetOrders(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) GetOrderDetail(ctx context.Context, orderID uint) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, orderID uint, status order.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderService) DashboardStats(ctx context.Context) (*order.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DashboardStats), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context, opts catalog.ListOptions) ([]catalog.Product, []catalog.Category, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]catalog.Product), args.Get(1).([]catalog.Category), args.Error(2)
}

func (m *MockCatalogService) GetProductDetail(ctx context.Context, id uint) (*catalog.ProductDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductDetail), args.Error(1)
}

func (m *MockCatalogService) ListAllProducts(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockCatalogService) SaveProduct(ctx context.Context, id *uint, params catalog.SaveProductParams) (uint, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockCatalogService) DeactivateProduct(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(ctx context.Context, email, password string) (string, *admin.AdminUser, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*admin.AdminUser), args.Error(2)
}

func (m *MockAdminService) Register(ctx context.Context, username, email, password string) (uint, error) {
	args := m.Called(ctx, username, email, password)
	return args.Get(0).(uint), args.Error(1)
}
