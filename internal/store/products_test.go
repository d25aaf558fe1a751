package store_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/notify"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/go-chi/chi/v5"
)

func TestProductStore_CreateAppendsAndNotifies(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/inventory/products", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []domain.Product{{ID: 1, Name: "Widget", SKU: "W-1"}})
	})
	r.Post("/api/inventory/products", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusCreated, domain.Product{ID: 2, Name: "Gadget", SKU: "G-1"})
	})

	env := newTestEnv(t, r)
	products := store.NewProductStore(env.api, env.bus, env.ui, env.logger)

	if !products.FetchAll(context.Background()) {
		t.Fatalf("fetch failed: %s", products.Err())
	}
	if !products.Create(context.Background(), domain.Product{Name: "Gadget", SKU: "G-1"}) {
		t.Fatalf("create failed: %s", products.Err())
	}

	items := products.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 products after create, got %d", len(items))
	}
	if items[1].ID != 2 {
		t.Errorf("expected server-assigned id 2, got %d", items[1].ID)
	}
	if products.Loading() {
		t.Error("expected loading false after create")
	}

	n, visible := env.ui.Current()
	if !visible || n.Severity != notify.SeveritySuccess {
		t.Errorf("expected success notification, got %+v visible=%v", n, visible)
	}
}

func TestProductStore_FailedCreateLeavesListUntouched(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/inventory/products", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []domain.Product{{ID: 1, Name: "Widget", SKU: "W-1"}})
	})
	r.Post("/api/inventory/products", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "sku already exists"})
	})

	env := newTestEnv(t, r)
	products := store.NewProductStore(env.api, env.bus, env.ui, env.logger)

	_ = products.FetchAll(context.Background())
	if products.Create(context.Background(), domain.Product{Name: "Dup", SKU: "W-1"}) {
		t.Fatal("expected create to fail")
	}

	if len(products.Items()) != 1 {
		t.Errorf("expected list unchanged, got %d items", len(products.Items()))
	}
	if products.Err() != "sku already exists" {
		t.Errorf("expected captured server message, got '%s'", products.Err())
	}
	if products.Loading() {
		t.Error("expected loading false after failure")
	}

	n, visible := env.ui.Current()
	if !visible || n.Severity != notify.SeverityError {
		t.Errorf("expected error notification, got %+v visible=%v", n, visible)
	}
}

func TestProductStore_UpdateReplacesListEntryAndSelected(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/inventory/products", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []domain.Product{
			{ID: 1, Name: "Widget", SKU: "W-1", Quantity: 5},
			{ID: 2, Name: "Gadget", SKU: "G-1", Quantity: 9},
		})
	})
	r.Get("/api/inventory/products/1", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, domain.Product{ID: 1, Name: "Widget", SKU: "W-1", Quantity: 5})
	})
	r.Put("/api/inventory/products/1", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, domain.Product{ID: 1, Name: "Widget v2", SKU: "W-1", Quantity: 8})
	})

	env := newTestEnv(t, r)
	products := store.NewProductStore(env.api, env.bus, env.ui, env.logger)

	_ = products.FetchAll(context.Background())
	_ = products.FetchOne(context.Background(), 1)

	if !products.Update(context.Background(), 1, domain.Product{Name: "Widget v2"}) {
		t.Fatalf("update failed: %s", products.Err())
	}

	items := products.Items()
	if items[0].Name != "Widget v2" || items[0].Quantity != 8 {
		t.Errorf("expected list entry replaced, got %+v", items[0])
	}
	if items[1].Name != "Gadget" {
		t.Errorf("expected other entries untouched, got %+v", items[1])
	}
	if sel := products.Selected(); sel == nil || sel.Name != "Widget v2" {
		t.Errorf("expected selected replaced, got %+v", sel)
	}
}

func TestProductStore_DeleteRemovesEntryAndClearsSelected(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/inventory/products", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []domain.Product{
			{ID: 1, Name: "Widget", SKU: "W-1"},
			{ID: 2, Name: "Gadget", SKU: "G-1"},
		})
	})
	r.Get("/api/inventory/products/2", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, domain.Product{ID: 2, Name: "Gadget", SKU: "G-1"})
	})
	r.Delete("/api/inventory/products/2", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	env := newTestEnv(t, r)
	products := store.NewProductStore(env.api, env.bus, env.ui, env.logger)

	_ = products.FetchAll(context.Background())
	_ = products.FetchOne(context.Background(), 2)

	if !products.Delete(context.Background(), 2) {
		t.Fatalf("delete failed: %s", products.Err())
	}

	items := products.Items()
	if len(items) != 1 || items[0].ID != 1 {
		t.Errorf("expected only product 1 left, got %+v", items)
	}
	if products.Selected() != nil {
		t.Error("expected selected cleared after deleting it")
	}
}

func TestProductStore_FilterDrivesQueryParameters(t *testing.T) {
	var gotQuery map[string][]string

	r := chi.NewRouter()
	r.Get("/api/inventory/products", func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query()
		writeJSON(w, http.StatusOK, []domain.Product{})
	})

	env := newTestEnv(t, r)
	products := store.NewProductStore(env.api, env.bus, env.ui, env.logger)

	ok := products.SetFilter(context.Background(), domain.ProductFilter{
		Search:     "widget",
		CategoryID: 3,
		LowStock:   true,
		SortBy:     "name",
		SortOrder:  "asc",
	})
	if !ok {
		t.Fatalf("fetch failed: %s", products.Err())
	}

	if got := gotQuery["search"]; len(got) != 1 || got[0] != "widget" {
		t.Errorf("expected search=widget, got %v", got)
	}
	if got := gotQuery["category_id"]; len(got) != 1 || got[0] != "3" {
		t.Errorf("expected category_id=3, got %v", got)
	}
	if got := gotQuery["low_stock"]; len(got) != 1 || got[0] != "true" {
		t.Errorf("expected low_stock=true, got %v", got)
	}

	// Reset restores the default newest-first ordering.
	_ = products.ResetFilter(context.Background())
	if got := gotQuery["sort_by"]; len(got) != 1 || got[0] != "created_at" {
		t.Errorf("expected default sort_by=created_at, got %v", got)
	}
	if len(gotQuery["search"]) != 0 {
		t.Errorf("expected search dropped after reset, got %v", gotQuery["search"])
	}
}
