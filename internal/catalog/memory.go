package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepository is an in-process Repository used as a demo/test fixture.
// It mirrors the persisted repository's semantics, including the nil-on-miss
// GetByID and the guarded stock decrement.
type MemoryRepository struct {
	mu         sync.RWMutex
	nextID     uint
	products   map[uint]*Product
	categories map[uint]Category
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID:     1,
		products:   make(map[uint]*Product),
		categories: make(map[uint]Category),
	}
}

// Seed inserts a product as-is and returns its assigned id.
func (r *MemoryRepository) Seed(p Product) uint {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.products[p.ID] = &p
	return p.ID
}

func (r *MemoryRepository) SeedCategory(c Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = c
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uint, onlyActive bool) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok || (onlyActive && !p.IsActive) {
		return nil, nil
	}

	cp := *p
	return &cp, nil
}

func (r *MemoryRepository) ListActive(ctx context.Context, opts ListOptions) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []Product
	for _, p := range r.products {
		if !p.IsActive {
			continue
		}
		if opts.Category != "" {
			if p.CategoryName == nil || *p.CategoryName != opts.Category {
				continue
			}
		}
		if opts.Search != "" {
			needle := strings.ToLower(opts.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}
		products = append(products, *p)
	}

	switch opts.Sort {
	case "price_low":
		sort.Slice(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price_high":
		sort.Slice(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "name":
		sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	default:
		sort.Slice(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	}

	return products, nil
}

func (r *MemoryRepository) ListAll(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []Product
	for _, p := range r.products {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	return products, nil
}

func (r *MemoryRepository) ListRelated(ctx context.Context, categoryID, excludeID uint, limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []Product
	for _, p := range r.products {
		if len(products) >= limit {
			break
		}
		if !p.IsActive || p.ID == excludeID {
			continue
		}
		if p.CategoryID == nil || *p.CategoryID != categoryID {
			continue
		}
		products = append(products, *p)
	}

	return products, nil
}

func (r *MemoryRepository) ListCategories(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var categories []Category
	for _, c := range r.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	return categories, nil
}

func (r *MemoryRepository) Create(ctx context.Context, params SaveProductParams) (uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.products[id] = &Product{
		ID:            id,
		Name:          params.Name,
		Description:   params.Description,
		Price:         params.Price,
		CategoryID:    params.CategoryID,
		Brand:         params.Brand,
		Model:         params.Model,
		StockQuantity: params.StockQuantity,
		ImageURL:      params.ImageURL,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}

	return id, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id uint, params SaveProductParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return ErrProductNotFound
	}

	p.Name = params.Name
	p.Description = params.Description
	p.Price = params.Price
	p.CategoryID = params.CategoryID
	p.Brand = params.Brand
	p.Model = params.Model
	p.StockQuantity = params.StockQuantity
	p.ImageURL = params.ImageURL

	return nil
}

func (r *MemoryRepository) Deactivate(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return ErrProductNotFound
	}
	p.IsActive = false

	return nil
}

func (r *MemoryRepository) DecrementStock(ctx context.Context, id uint, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok || p.StockQuantity < quantity {
		return ErrInsufficientStock
	}
	p.StockQuantity -= quantity

	return nil
}

func (r *MemoryRepository) CountActive(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, p := range r.products {
		if p.IsActive {
			count++
		}
	}

	return count, nil
}
