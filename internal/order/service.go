package order

import (
	"context"
	"fmt"
	"time"

	"toystore-be/internal/cart"
	"toystore-be/internal/catalog"
	"toystore-be/internal/logger"
	"toystore-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, sessionID string, input CheckoutInput) (*Confirmation, error)
	GetOrders(ctx context.Context) ([]Order, error)
	GetOrderDetail(ctx context.Context, orderID uint) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status OrderStatus) error
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type service struct {
	repo        Repository
	cartSvc     cart.Service
	catalogRepo catalog.Repository
}

func NewService(repo Repository, cartSvc cart.Service, catalogRepo catalog.Repository) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		catalogRepo: catalogRepo,
	}
}

// PlaceOrder runs the checkout workflow for one session:
//
//  1. refuse an empty cart
//  2. re-validate stock for every line against the live catalog
//  3. compute the total server-side from current unit prices
//  4. persist the order and all line items atomically
//  5. decrement inventory per line (best effort, after commit)
//  6. clear the session cart
//
// Steps 2-4 are fail-fast: no order exists after a failure there. Failures
// in steps 5-6 are logged and do not change the reported outcome; the order
// stands.
func (s *service) PlaceOrder(ctx context.Context, sessionID string, input CheckoutInput) (*Confirmation, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.String("session_id", sessionID),
	)

	// 1. Load cart
	view, err := s.cartSvc.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(view.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	log = log.With(zap.Int("item_count", len(view.Lines)))
	log.Info("checkout started")

	// 2. Re-validate stock and 3. compute total from current prices
	items := make([]OrderItem, 0, len(view.Lines))
	var total float64

	for _, line := range view.Lines {
		product, err := s.catalogRepo.GetByID(ctx, line.ProductID, true)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, line.ProductID)
		}
		if line.Quantity > product.StockQuantity {
			log.Warn("stock re-validation failed",
				zap.Uint("product_id", product.ID),
				zap.Int("requested", line.Quantity),
				zap.Int("stock", product.StockQuantity),
			)
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
		}

		items = append(items, OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
		total += float64(line.Quantity) * product.Price
	}

	// 4. Persist order + line items atomically
	o := &Order{
		OrderNumber:     utils.GenerateOrderNumber(),
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		ShippingAddress: input.Address,
		City:            input.City,
		State:           input.State,
		ZipCode:         input.ZipCode,
		TotalAmount:     total,
		PaymentMethod:   input.PaymentMethod,
		Status:          StatusPending,
		SessionID:       sessionID,
		CreatedAt:       time.Now(),
	}

	orderID, err := s.repo.CreateOrderTx(ctx, o, items)
	if err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return nil, err
	}

	log = log.With(
		zap.Uint("order_id", orderID),
		zap.Float64("total", total),
	)

	// 5. Decrement inventory. The order is already committed; a failed
	// decrement leaves stock stale rather than voiding the order.
	for _, item := range items {
		if err := s.catalogRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Error("stock decrement failed after order commit",
				zap.Uint("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
				zap.Error(err),
			)
		}
	}

	// 6. Clear the session cart
	if err := s.cartSvc.Clear(ctx, sessionID); err != nil {
		log.Error("failed to clear cart after order commit", zap.Error(err))
	}

	log.Info("order placed")

	return &Confirmation{
		OrderID:      orderID,
		OrderNumber:  o.OrderNumber,
		Total:        total,
		CustomerName: o.CustomerName,
	}, nil
}

func (s *service) GetOrders(ctx context.Context) ([]Order, error) {
	return s.repo.GetOrders(ctx)
}

func (s *service) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	return s.repo.GetOrderDetail(ctx, orderID)
}

// validStatuses is the set of storable order statuses. Any member may be set
// from any other; there are no transition rules.
var validStatuses = map[OrderStatus]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func (s *service) UpdateOrderStatus(ctx context.Context, orderID uint, status OrderStatus) error {
	if !validStatuses[status] {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return s.repo.UpdateStatus(ctx, orderID, status)
}

func (s *service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	orders, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.catalogRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repo.Revenue(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Orders:   orders,
		Products: products,
		Revenue:  revenue,
	}, nil
}
