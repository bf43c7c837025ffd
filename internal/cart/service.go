package cart

import (
	"context"

	"toystore-be/internal/catalog"
	"toystore-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for session carts.
//
// Missing-line semantics follow the persisted variant: updating or removing
// a line that does not exist reports ErrCartItemNotFound rather than being a
// silent no-op.
type Service interface {
	AddItem(ctx context.Context, params AddItemParams) error
	UpdateItem(ctx context.Context, params UpdateItemParams) error
	RemoveItem(ctx context.Context, sessionID string, productID uint) error
	View(ctx context.Context, sessionID string) (*CartView, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
}

func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{repo: repo, catalogRepo: catalogRepo}
}

// AddItem upserts a line item. The merged quantity (existing + requested)
// must not exceed the product's current stock; on failure the cart is left
// untouched.
func (s *service) AddItem(ctx context.Context, params AddItemParams) error {
	if params.SessionID == "" {
		return ErrSessionRequired
	}
	if params.Quantity < 1 {
		return ErrInvalidQuantity
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.String("session_id", params.SessionID),
		zap.Uint("product_id", params.ProductID),
		zap.Int("quantity", params.Quantity),
	)

	// Only active products can be added.
	product, err := s.catalogRepo.GetByID(ctx, params.ProductID, true)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	item, err := s.repo.GetItem(ctx, params.SessionID, params.ProductID)
	if err != nil {
		return err
	}

	finalQty := params.Quantity
	if item != nil {
		finalQty += item.Quantity
	}

	if finalQty > product.StockQuantity {
		log.Warn("insufficient stock",
			zap.Int("requested", finalQty),
			zap.Int("stock", product.StockQuantity),
		)
		return ErrInsufficientStock
	}

	if item == nil {
		_, err = s.repo.CreateItem(ctx, params)
	} else {
		err = s.repo.UpdateQuantity(ctx, params.SessionID, params.ProductID, finalQty)
	}
	if err != nil {
		return err
	}

	log.Debug("cart item upserted", zap.Int("final_quantity", finalQty))

	return nil
}

// UpdateItem sets a line's quantity. Quantity <= 0 removes the line.
func (s *service) UpdateItem(ctx context.Context, params UpdateItemParams) error {
	if params.SessionID == "" {
		return ErrSessionRequired
	}

	if params.Quantity <= 0 {
		return s.repo.Remove(ctx, params.SessionID, params.ProductID)
	}

	product, err := s.catalogRepo.GetByID(ctx, params.ProductID, true)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if params.Quantity > product.StockQuantity {
		return ErrInsufficientStock
	}

	return s.repo.UpdateQuantity(ctx, params.SessionID, params.ProductID, params.Quantity)
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, productID uint) error {
	if sessionID == "" {
		return ErrSessionRequired
	}
	return s.repo.Remove(ctx, sessionID, productID)
}

// View joins the cart with the current catalog and totals the subtotals.
// Lines whose product is no longer resolvable are dropped by the join.
func (s *service) View(ctx context.Context, sessionID string) (*CartView, error) {
	if sessionID == "" {
		return &CartView{Lines: []CartLine{}}, nil
	}

	lines, err := s.repo.GetLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Lines: lines}
	if view.Lines == nil {
		view.Lines = []CartLine{}
	}
	for _, line := range lines {
		view.Total += line.Subtotal
	}

	return view, nil
}

// Clear empties the session's cart. Used by order placement after a
// successful checkout.
func (s *service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionRequired
	}
	return s.repo.Clear(ctx, sessionID)
}
