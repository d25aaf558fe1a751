package store_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/notify"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/go-chi/chi/v5"
)

func TestOrderStore_UpdateStatusSendsPayloadAndNotifies(t *testing.T) {
	var gotBody map[string]string

	r := chi.NewRouter()
	r.Get("/api/orders", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []domain.Order{
			{ID: 42, OrderNumber: "ORD-42", Status: domain.OrderProcessing},
		})
	})
	r.Put("/api/orders/42/status", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewDecoder(req.Body).Decode(&gotBody)
		writeJSON(w, http.StatusOK, domain.Order{ID: 42, OrderNumber: "ORD-42", Status: domain.OrderShipped})
	})

	env := newTestEnv(t, r)
	orders := store.NewOrderStore(env.api, env.bus, env.ui, env.logger)

	_ = orders.FetchAll(context.Background())
	if !orders.UpdateStatus(context.Background(), 42, domain.OrderShipped) {
		t.Fatalf("update failed: %s", orders.Err())
	}

	if gotBody["status"] != "shipped" {
		t.Errorf("expected status payload 'shipped', got %v", gotBody)
	}
	if got := orders.Items()[0].Status; got != domain.OrderShipped {
		t.Errorf("expected list entry moved to shipped, got %s", got)
	}

	n, visible := env.ui.Current()
	if !visible || n.Severity != notify.SeveritySuccess {
		t.Errorf("expected success notification, got %+v visible=%v", n, visible)
	}
}

func TestOrderStore_CreateSelectsNewOrder(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/orders", func(w http.ResponseWriter, req *http.Request) {
		var draft domain.OrderDraft
		_ = json.NewDecoder(req.Body).Decode(&draft)
		writeJSON(w, http.StatusCreated, domain.Order{
			ID:          7,
			OrderNumber: "ORD-7",
			SupplierID:  draft.SupplierID,
			Status:      domain.OrderPending,
			TotalAmount: 120,
		})
	})

	env := newTestEnv(t, r)
	orders := store.NewOrderStore(env.api, env.bus, env.ui, env.logger)

	id, ok := orders.Create(context.Background(), domain.OrderDraft{
		SupplierID: 3,
		Items:      []domain.OrderItemDraft{{ProductID: 1, Quantity: 2, UnitPrice: 60}},
	})
	if !ok {
		t.Fatalf("create failed: %s", orders.Err())
	}
	if id != 7 {
		t.Errorf("expected order id 7, got %d", id)
	}
	if sel := orders.Selected(); sel == nil || sel.OrderNumber != "ORD-7" {
		t.Errorf("expected created order selected, got %+v", sel)
	}
}

func TestOrderStore_UploadFileAppendsToSelected(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/orders/42", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, domain.Order{ID: 42, OrderNumber: "ORD-42"})
	})
	r.Post("/api/orders/42/files", func(w http.ResponseWriter, req *http.Request) {
		if err := req.ParseMultipartForm(1 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad form"})
			return
		}
		_, hdr, err := req.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "missing file"})
			return
		}
		writeJSON(w, http.StatusCreated, domain.OrderFile{ID: 9, OrderID: 42, Filename: hdr.Filename})
	})

	env := newTestEnv(t, r)
	orders := store.NewOrderStore(env.api, env.bus, env.ui, env.logger)

	_ = orders.FetchOne(context.Background(), 42)
	if !orders.UploadFile(context.Background(), 42, "invoice.pdf", strings.NewReader("pdf bytes")) {
		t.Fatalf("upload failed: %s", orders.Err())
	}

	sel := orders.Selected()
	if sel == nil || len(sel.Files) != 1 || sel.Files[0].Filename != "invoice.pdf" {
		t.Errorf("expected attachment on selected order, got %+v", sel)
	}
}
