package store_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stockpilot/stockpilot-go/internal/api"
	"github.com/stockpilot/stockpilot-go/internal/infra/observability"
	"github.com/stockpilot/stockpilot-go/internal/infra/resilience"
	"github.com/stockpilot/stockpilot-go/internal/notify"
	"github.com/stockpilot/stockpilot-go/internal/storage"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// testEnv wires the container graph against a fake backend.
type testEnv struct {
	srv     *httptest.Server
	api     *api.Client
	state   *storage.Store
	bus     *notify.Bus
	metrics *observability.Metrics
	ui      *store.UIStore
	session *store.SessionStore
	logger  *zap.Logger
}

func newTestEnv(t *testing.T, router chi.Router) *testEnv {
	t.Helper()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	state, err := storage.Open(filepath.Join(t.TempDir(), "state.yaml"))
	if err != nil {
		t.Fatalf("open state: %v", err)
	}
	_ = state.Set(storage.KeyAccessToken, "tok-valid")

	bus := notify.NewBus()
	metrics := observability.NewMetrics()
	logger := zap.NewNop()

	apiClient := api.NewClient(
		&http.Client{Timeout: 5 * time.Second},
		srv.URL+"/api",
		state,
		resilience.NewCircuitBreaker("test"),
		resilience.NewBulkhead(8),
		metrics,
		logger,
	)

	ui := store.NewUIStore(state, bus, metrics)
	session := store.NewSessionStore(apiClient, state, bus, logger)
	apiClient.SetAuthExpiredHandler(session.HandleAuthExpired)

	return &testEnv{
		srv:     srv,
		api:     apiClient,
		state:   state,
		bus:     bus,
		metrics: metrics,
		ui:      ui,
		session: session,
		logger:  logger,
	}
}
