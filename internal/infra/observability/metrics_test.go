package observability_test

import (
	"testing"

	"github.com/stockpilot/stockpilot-go/internal/infra/observability"
)

func TestMetrics_SnapshotReflectsCounters(t *testing.T) {
	m := observability.NewMetrics()

	m.IncrRequest("success")
	m.IncrRequest("success")
	m.IncrRequest("success")
	m.IncrRequest("error")
	m.IncrTokenRefresh("success")
	m.IncrCacheHit("categories")
	m.IncrCacheMiss("categories")

	snap := m.GetSnapshot()
	if snap.TotalRequests != 4 {
		t.Errorf("expected 4 requests, got %.0f", snap.TotalRequests)
	}
	if snap.ErrorRate != 0.25 {
		t.Errorf("expected error rate 0.25, got %f", snap.ErrorRate)
	}
	if snap.TokenRefreshes != 1 {
		t.Errorf("expected 1 refresh, got %.0f", snap.TokenRefreshes)
	}
	if snap.CacheHitRate != 0.5 {
		t.Errorf("expected cache hit rate 0.5, got %f", snap.CacheHitRate)
	}
}

func TestMetrics_SnapshotSumsAPIErrorsAcrossResources(t *testing.T) {
	m := observability.NewMetrics()

	m.IncrAPIError("products")
	m.IncrAPIError("products")
	m.IncrAPIError("orders")

	snap := m.GetSnapshot()
	if snap.APIErrors != 3 {
		t.Errorf("expected 3 api errors, got %.0f", snap.APIErrors)
	}
}

func TestMetrics_EmptySnapshotHasZeroRates(t *testing.T) {
	snap := observability.NewMetrics().GetSnapshot()
	if snap.ErrorRate != 0 || snap.CacheHitRate != 0 {
		t.Errorf("expected zero rates on a fresh registry, got %+v", snap)
	}
}
