package store

import (
	"context"
	"io"
	"sync"

	"github.com/stockpilot/stockpilot-go/internal/api"
	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/notify"

	"go.uber.org/zap"
)

// OrderStore is the order container. Orders add two operations beyond
// plain CRUD: status transitions and file attachments.
type OrderStore struct {
	*Container[domain.Order]

	api *api.Client
	ui  *UIStore

	filterMu sync.Mutex
	filter   domain.OrderFilter
}

func NewOrderStore(apiClient *api.Client, bus *notify.Bus, ui *UIStore, logger *zap.Logger) *OrderStore {
	return &OrderStore{
		Container: newContainer("orders", func(o domain.Order) int64 { return o.ID }, bus, ui, logger),
		api:       apiClient,
		ui:        ui,
	}
}

// Filter returns the current order filter.
func (s *OrderStore) Filter() domain.OrderFilter {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	return s.filter
}

// SetFilter replaces the filter state and refetches the list.
func (s *OrderStore) SetFilter(ctx context.Context, f domain.OrderFilter) bool {
	s.filterMu.Lock()
	s.filter = f
	s.filterMu.Unlock()
	return s.FetchAll(ctx)
}

// ResetFilter clears the filter and refetches.
func (s *OrderStore) ResetFilter(ctx context.Context) bool {
	return s.SetFilter(ctx, domain.OrderFilter{})
}

func (s *OrderStore) FetchAll(ctx context.Context) bool {
	f := s.Filter()
	return s.fetchAll(ctx, func(ctx context.Context) ([]domain.Order, error) {
		return s.api.ListOrders(ctx, f)
	})
}

func (s *OrderStore) FetchOne(ctx context.Context, id int64) bool {
	return s.fetchOne(ctx, func(ctx context.Context) (*domain.Order, error) {
		return s.api.GetOrder(ctx, id)
	})
}

// Create submits an order draft. Returns the new order's id and true on
// success; the created order also becomes the selected one.
func (s *OrderStore) Create(ctx context.Context, draft domain.OrderDraft) (int64, bool) {
	order, ok := s.create(ctx, "Order created", func(ctx context.Context) (*domain.Order, error) {
		return s.api.CreateOrder(ctx, draft)
	})
	if !ok {
		return 0, false
	}
	s.replaceSelected(order)
	return order.ID, true
}

// UpdateStatus moves an order through its lifecycle.
func (s *OrderStore) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) bool {
	return s.update(ctx, id, "Order status updated", func(ctx context.Context) (*domain.Order, error) {
		return s.api.UpdateOrderStatus(ctx, id, status)
	})
}

func (s *OrderStore) Delete(ctx context.Context, id int64) bool {
	return s.remove(ctx, id, "Order deleted", func(ctx context.Context) error {
		return s.api.DeleteOrder(ctx, id)
	})
}

// UploadFile attaches a file to an order. When the order is the selected
// one, the new attachment is appended to its file list in place.
func (s *OrderStore) UploadFile(ctx context.Context, orderID int64, filename string, content io.Reader) bool {
	file, err := s.api.UploadOrderFile(ctx, orderID, filename, content)
	if err != nil {
		s.fail(err)
		s.ui.ShowError(err.Error())
		return false
	}

	if selected := s.Selected(); selected != nil && selected.ID == orderID {
		selected.Files = append(selected.Files, *file)
		s.replaceSelected(selected)
	}

	s.ui.ShowSuccess("File uploaded")
	return true
}
