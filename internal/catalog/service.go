package catalog

import (
	"context"
	"time"

	"toystore-be/internal/logger"

	"go.uber.org/zap"
)

const relatedLimit = 4

// Service defines the storefront and back-office product operations.
type Service interface {
	ListProducts(ctx context.Context, opts ListOptions) ([]Product, []Category, error)
	GetProductDetail(ctx context.Context, id uint) (*ProductDetail, error)
	ListAllProducts(ctx context.Context) ([]Product, error)
	SaveProduct(ctx context.Context, id *uint, params SaveProductParams) (uint, error)
	DeactivateProduct(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListProducts returns the filtered active-product listing alongside the
// category list used to render the filter bar.
func (s *service) ListProducts(ctx context.Context, opts ListOptions) ([]Product, []Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
		zap.String("category", opts.Category),
		zap.String("search", opts.Search),
		zap.String("sort", opts.Sort),
	)

	start := time.Now()

	products, err := s.repo.ListActive(ctx, opts)
	if err != nil {
		log.Error("failed to list products", zap.Error(err))
		return nil, nil, err
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		log.Error("failed to list categories", zap.Error(err))
		return nil, nil, err
	}

	log.Info("list products success",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, categories, nil
}

func (s *service) GetProductDetail(ctx context.Context, id uint) (*ProductDetail, error) {
	p, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	detail := &ProductDetail{Product: *p}

	if p.CategoryID != nil {
		related, err := s.repo.ListRelated(ctx, *p.CategoryID, p.ID, relatedLimit)
		if err != nil {
			return nil, err
		}
		detail.Related = related
	}

	return detail, nil
}

func (s *service) ListAllProducts(ctx context.Context) ([]Product, error) {
	return s.repo.ListAll(ctx)
}

// SaveProduct creates the product when id is nil, updates it otherwise.
func (s *service) SaveProduct(ctx context.Context, id *uint, params SaveProductParams) (uint, error) {
	if params.Name == "" {
		return 0, ErrEmptyName
	}
	if params.Price < 0 {
		return 0, ErrInvalidPrice
	}
	if params.StockQuantity < 0 {
		return 0, ErrInvalidStock
	}

	if id == nil {
		return s.repo.Create(ctx, params)
	}

	if err := s.repo.Update(ctx, *id, params); err != nil {
		return 0, err
	}
	return *id, nil
}

func (s *service) DeactivateProduct(ctx context.Context, id uint) error {
	return s.repo.Deactivate(ctx, id)
}
