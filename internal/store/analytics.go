package store

import (
	"context"
	"sync"

	"github.com/stockpilot/stockpilot-go/internal/api"
	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/infra/cache"
	"github.com/stockpilot/stockpilot-go/internal/infra/observability"
	"github.com/stockpilot/stockpilot-go/internal/notify"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const dashboardCacheKey = "dashboard"

// AnalyticsStore holds the read-only analytics views: dashboard bundle,
// per-product forecast, restock recommendations. All numbers come from the
// server; the client never recomputes them.
type AnalyticsStore struct {
	mu        sync.Mutex
	dashboard *domain.Dashboard
	forecast  []domain.ForecastPoint
	restock   []domain.RestockRecommendation
	loading   bool
	err       string

	api     *api.Client
	cache   *cache.InMemory[domain.Dashboard]
	metrics *observability.Metrics
	bus     *notify.Bus
	ui      *UIStore
	logger  *zap.Logger
}

func NewAnalyticsStore(apiClient *api.Client, dashCache *cache.InMemory[domain.Dashboard], metrics *observability.Metrics, bus *notify.Bus, ui *UIStore, logger *zap.Logger) *AnalyticsStore {
	return &AnalyticsStore{
		api:     apiClient,
		cache:   dashCache,
		metrics: metrics,
		bus:     bus,
		ui:      ui,
		logger:  logger,
	}
}

func (s *AnalyticsStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *AnalyticsStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Dashboard returns the last fetched dashboard bundle, or nil.
func (s *AnalyticsStore) Dashboard() *domain.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dashboard == nil {
		return nil
	}
	d := *s.dashboard
	return &d
}

// Forecast returns the last fetched per-product forecast.
func (s *AnalyticsStore) Forecast() []domain.ForecastPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ForecastPoint, len(s.forecast))
	copy(out, s.forecast)
	return out
}

// Restock returns the last fetched restock recommendations.
func (s *AnalyticsStore) Restock() []domain.RestockRecommendation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RestockRecommendation, len(s.restock))
	copy(out, s.restock)
	return out
}

// FetchDashboard loads the four dashboard blocks in parallel. period is
// the trend/top-sellers window in days.
func (s *AnalyticsStore) FetchDashboard(ctx context.Context, period int) bool {
	if d, ok := s.cache.Get(dashboardCacheKey); ok {
		s.metrics.IncrCacheHit("analytics")
		s.mu.Lock()
		s.dashboard = &d
		s.err = ""
		s.mu.Unlock()
		s.changed()
		return true
	}
	s.metrics.IncrCacheMiss("analytics")

	s.begin()

	var d domain.Dashboard
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.api.GetDashboardStats(gCtx)
		if err != nil {
			return err
		}
		d.Stats = *stats
		return nil
	})
	g.Go(func() error {
		trends, err := s.api.GetSalesTrends(gCtx, period)
		if err != nil {
			return err
		}
		d.Trends = trends
		return nil
	})
	g.Go(func() error {
		top, err := s.api.GetTopProducts(gCtx, period)
		if err != nil {
			return err
		}
		d.TopProducts = top
		return nil
	})
	g.Go(func() error {
		dist, err := s.api.GetCategoryDistribution(gCtx)
		if err != nil {
			return err
		}
		d.Distribution = dist
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("analytics: dashboard fetch failed", zap.Error(err))
		s.fail(err)
		return false
	}

	s.cache.Set(dashboardCacheKey, d)

	s.mu.Lock()
	s.dashboard = &d
	s.loading = false
	s.mu.Unlock()
	s.changed()
	return true
}

// FetchForecast loads predicted demand for one product.
func (s *AnalyticsStore) FetchForecast(ctx context.Context, productID int64, days int) bool {
	s.begin()

	points, err := s.api.GetForecast(ctx, productID, days)
	if err != nil {
		s.fail(err)
		return false
	}

	s.mu.Lock()
	s.forecast = points
	s.loading = false
	s.mu.Unlock()
	s.changed()
	return true
}

// FetchRestock loads restock recommendations.
func (s *AnalyticsStore) FetchRestock(ctx context.Context) bool {
	s.begin()

	recs, err := s.api.GetRestockRecommendations(ctx)
	if err != nil {
		s.fail(err)
		return false
	}

	s.mu.Lock()
	s.restock = recs
	s.loading = false
	s.mu.Unlock()
	s.changed()
	return true
}

// Train triggers a forecasting-model retrain, scoped to one product when
// productID > 0. Mutating contract: notification plus bool, no raw error.
func (s *AnalyticsStore) Train(ctx context.Context, productID int64) bool {
	s.begin()

	if err := s.api.TrainModel(ctx, productID); err != nil {
		s.fail(err)
		s.ui.ShowError(err.Error())
		return false
	}

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	s.changed()

	s.cache.Delete(dashboardCacheKey)
	s.ui.ShowSuccess("Model trained")
	return true
}

func (s *AnalyticsStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
	s.changed()
}

func (s *AnalyticsStore) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
	s.changed()
}

func (s *AnalyticsStore) changed() {
	s.bus.Publish(notify.TopicStateChanged, "analytics")
}
