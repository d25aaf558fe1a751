package store

import (
	"context"
	"sync"

	"github.com/stockpilot/stockpilot-go/internal/api"
	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/notify"

	"go.uber.org/zap"
)

// ProductStore is the catalog container. Filter state lives alongside the
// list; changing it re-triggers the fetch.
type ProductStore struct {
	*Container[domain.Product]

	api *api.Client

	filterMu sync.Mutex
	filter   domain.ProductFilter
}

func NewProductStore(apiClient *api.Client, bus *notify.Bus, ui *UIStore, logger *zap.Logger) *ProductStore {
	return &ProductStore{
		Container: newContainer("products", func(p domain.Product) int64 { return p.ID }, bus, ui, logger),
		api:       apiClient,
		filter:    domain.DefaultProductFilter(),
	}
}

// Filter returns the current catalog filter.
func (s *ProductStore) Filter() domain.ProductFilter {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	return s.filter
}

// SetFilter merges the new filter state and refetches the list.
func (s *ProductStore) SetFilter(ctx context.Context, f domain.ProductFilter) bool {
	s.filterMu.Lock()
	s.filter = f
	s.filterMu.Unlock()
	return s.FetchAll(ctx)
}

// ResetFilter restores the default filter and refetches.
func (s *ProductStore) ResetFilter(ctx context.Context) bool {
	return s.SetFilter(ctx, domain.DefaultProductFilter())
}

func (s *ProductStore) FetchAll(ctx context.Context) bool {
	f := s.Filter()
	return s.fetchAll(ctx, func(ctx context.Context) ([]domain.Product, error) {
		return s.api.ListProducts(ctx, f)
	})
}

func (s *ProductStore) FetchOne(ctx context.Context, id int64) bool {
	return s.fetchOne(ctx, func(ctx context.Context) (*domain.Product, error) {
		return s.api.GetProduct(ctx, id)
	})
}

func (s *ProductStore) Create(ctx context.Context, p domain.Product) bool {
	_, ok := s.create(ctx, "Product created", func(ctx context.Context) (*domain.Product, error) {
		return s.api.CreateProduct(ctx, p)
	})
	return ok
}

func (s *ProductStore) Update(ctx context.Context, id int64, p domain.Product) bool {
	return s.update(ctx, id, "Product updated", func(ctx context.Context) (*domain.Product, error) {
		return s.api.UpdateProduct(ctx, id, p)
	})
}

func (s *ProductStore) Delete(ctx context.Context, id int64) bool {
	return s.remove(ctx, id, "Product deleted", func(ctx context.Context) error {
		return s.api.DeleteProduct(ctx, id)
	})
}

// FetchLowStock replaces the list with products below their server-defined
// threshold.
func (s *ProductStore) FetchLowStock(ctx context.Context) bool {
	return s.fetchAll(ctx, func(ctx context.Context) ([]domain.Product, error) {
		return s.api.ListLowStockProducts(ctx)
	})
}

// FetchLogs returns the stock-movement history of one product. The list
// is not held in container state; history is rendered once per request.
func (s *ProductStore) FetchLogs(ctx context.Context, productID int64) ([]domain.InventoryLog, bool) {
	logs, err := s.api.ListInventoryLogs(ctx, productID)
	if err != nil {
		s.fail(err)
		return nil, false
	}
	return logs, true
}
