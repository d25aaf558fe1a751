package store

import (
	"net/http"

	"github.com/stockpilot/stockpilot-go/internal/api"
	"github.com/stockpilot/stockpilot-go/internal/config"
	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/infra/cache"
	"github.com/stockpilot/stockpilot-go/internal/infra/observability"
	"github.com/stockpilot/stockpilot-go/internal/infra/resilience"
	"github.com/stockpilot/stockpilot-go/internal/notify"
	"github.com/stockpilot/stockpilot-go/internal/storage"

	"go.uber.org/zap"
)

// App is the application context: every container constructed once at
// startup and passed by reference to whatever needs it. There is no
// ambient singleton; the CLI owns the single instance.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Bus     *notify.Bus
	State   *storage.Store
	Metrics *observability.Metrics
	API     *api.Client

	UI         *UIStore
	Session    *SessionStore
	Products   *ProductStore
	Categories *CategoryStore
	Suppliers  *SupplierStore
	Orders     *OrderStore
	Users      *UserStore
	Analytics  *AnalyticsStore
}

// NewApp wires the full container graph: storage → API client → session/UI
// → resource containers.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	state, err := storage.Open(cfg.StateFile)
	if err != nil {
		return nil, err
	}

	bus := notify.NewBus()
	metrics := observability.NewMetrics()

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	cb := resilience.NewCircuitBreaker("inventory-api")
	bulkhead := resilience.NewBulkhead(cfg.MaxConcurrency)

	apiClient := api.NewClient(httpClient, cfg.APIBaseURL, state, cb, bulkhead, metrics, logger)

	ui := NewUIStore(state, bus, metrics)
	session := NewSessionStore(apiClient, state, bus, logger)

	// Irrecoverable 401: tokens are already cleared; drop the session.
	apiClient.SetAuthExpiredHandler(session.HandleAuthExpired)

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Bus:     bus,
		State:   state,
		Metrics: metrics,
		API:     apiClient,

		UI:         ui,
		Session:    session,
		Products:   NewProductStore(apiClient, bus, ui, logger),
		Categories: NewCategoryStore(apiClient, cache.New[[]domain.Category](cfg.CacheTTL), metrics, bus, ui, logger),
		Suppliers:  NewSupplierStore(apiClient, bus, ui, logger),
		Orders:     NewOrderStore(apiClient, bus, ui, logger),
		Users:      NewUserStore(apiClient, session, bus, ui, logger),
		Analytics:  NewAnalyticsStore(apiClient, cache.New[domain.Dashboard](cfg.CacheTTL), metrics, bus, ui, logger),
	}
	return app, nil
}
