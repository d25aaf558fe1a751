package store

import (
	"context"

	"github.com/stockpilot/stockpilot-go/internal/api"
	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/infra/cache"
	"github.com/stockpilot/stockpilot-go/internal/infra/observability"
	"github.com/stockpilot/stockpilot-go/internal/notify"

	"go.uber.org/zap"
)

const categoryCacheKey = "categories"

// CategoryStore is the category container. Categories change rarely, so
// the fetched list sits behind a TTL cache; every mutation flushes it.
type CategoryStore struct {
	*Container[domain.Category]

	api     *api.Client
	cache   *cache.InMemory[[]domain.Category]
	metrics *observability.Metrics
}

func NewCategoryStore(apiClient *api.Client, listCache *cache.InMemory[[]domain.Category], metrics *observability.Metrics, bus *notify.Bus, ui *UIStore, logger *zap.Logger) *CategoryStore {
	return &CategoryStore{
		Container: newContainer("categories", func(c domain.Category) int64 { return c.ID }, bus, ui, logger),
		api:       apiClient,
		cache:     listCache,
		metrics:   metrics,
	}
}

func (s *CategoryStore) FetchAll(ctx context.Context) bool {
	if items, ok := s.cache.Get(categoryCacheKey); ok {
		s.metrics.IncrCacheHit("categories")
		return s.fetchAll(ctx, func(context.Context) ([]domain.Category, error) {
			return items, nil
		})
	}
	s.metrics.IncrCacheMiss("categories")

	return s.fetchAll(ctx, func(ctx context.Context) ([]domain.Category, error) {
		items, err := s.api.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(categoryCacheKey, items)
		return items, nil
	})
}

func (s *CategoryStore) FetchOne(ctx context.Context, id int64) bool {
	return s.fetchOne(ctx, func(ctx context.Context) (*domain.Category, error) {
		return s.api.GetCategory(ctx, id)
	})
}

func (s *CategoryStore) Create(ctx context.Context, c domain.Category) bool {
	_, ok := s.create(ctx, "Category created", func(ctx context.Context) (*domain.Category, error) {
		return s.api.CreateCategory(ctx, c)
	})
	if ok {
		s.cache.Flush()
	}
	return ok
}

func (s *CategoryStore) Update(ctx context.Context, id int64, c domain.Category) bool {
	ok := s.update(ctx, id, "Category updated", func(ctx context.Context) (*domain.Category, error) {
		return s.api.UpdateCategory(ctx, id, c)
	})
	if ok {
		s.cache.Flush()
	}
	return ok
}

func (s *CategoryStore) Delete(ctx context.Context, id int64) bool {
	ok := s.remove(ctx, id, "Category deleted", func(ctx context.Context) error {
		return s.api.DeleteCategory(ctx, id)
	})
	if ok {
		s.cache.Flush()
	}
	return ok
}
