package store

import (
	"context"

	"github.com/stockpilot/stockpilot-go/internal/api"
	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/notify"

	"go.uber.org/zap"
)

// SupplierStore is the vendor container.
type SupplierStore struct {
	*Container[domain.Supplier]

	api *api.Client
}

func NewSupplierStore(apiClient *api.Client, bus *notify.Bus, ui *UIStore, logger *zap.Logger) *SupplierStore {
	return &SupplierStore{
		Container: newContainer("suppliers", func(s domain.Supplier) int64 { return s.ID }, bus, ui, logger),
		api:       apiClient,
	}
}

func (s *SupplierStore) FetchAll(ctx context.Context) bool {
	return s.fetchAll(ctx, func(ctx context.Context) ([]domain.Supplier, error) {
		return s.api.ListSuppliers(ctx)
	})
}

func (s *SupplierStore) FetchOne(ctx context.Context, id int64) bool {
	return s.fetchOne(ctx, func(ctx context.Context) (*domain.Supplier, error) {
		return s.api.GetSupplier(ctx, id)
	})
}

func (s *SupplierStore) Create(ctx context.Context, sup domain.Supplier) bool {
	_, ok := s.create(ctx, "Supplier created", func(ctx context.Context) (*domain.Supplier, error) {
		return s.api.CreateSupplier(ctx, sup)
	})
	return ok
}

func (s *SupplierStore) Update(ctx context.Context, id int64, sup domain.Supplier) bool {
	return s.update(ctx, id, "Supplier updated", func(ctx context.Context) (*domain.Supplier, error) {
		return s.api.UpdateSupplier(ctx, id, sup)
	})
}

func (s *SupplierStore) Delete(ctx context.Context, id int64) bool {
	return s.remove(ctx, id, "Supplier deleted", func(ctx context.Context) error {
		return s.api.DeleteSupplier(ctx, id)
	})
}

// SuggestAddresses proxies the address-lookup integration for form
// completion. Results are returned, not held as container state.
func (s *SupplierStore) SuggestAddresses(ctx context.Context, query string, count int) ([]domain.AddressSuggestion, bool) {
	suggestions, err := s.api.SuggestAddresses(ctx, query, count)
	if err != nil {
		s.fail(err)
		return nil, false
	}
	return suggestions, true
}

// SuggestCompanies proxies the company-lookup integration.
func (s *SupplierStore) SuggestCompanies(ctx context.Context, query string, count int) ([]domain.CompanySuggestion, bool) {
	suggestions, err := s.api.SuggestCompanies(ctx, query, count)
	if err != nil {
		s.fail(err)
		return nil, false
	}
	return suggestions, true
}
