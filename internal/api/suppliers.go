package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stockpilot/stockpilot-go/internal/domain"
)

func (c *Client) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	ctx, span := tracer.Start(ctx, "API.ListSuppliers")
	defer span.End()

	var out []domain.Supplier
	if err := c.do(ctx, "suppliers.list", http.MethodGet, "/inventory/suppliers", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	ctx, span := tracer.Start(ctx, "API.GetSupplier")
	defer span.End()

	var out domain.Supplier
	if err := c.do(ctx, "suppliers.get", http.MethodGet, fmt.Sprintf("/inventory/suppliers/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSupplier(ctx context.Context, s domain.Supplier) (*domain.Supplier, error) {
	ctx, span := tracer.Start(ctx, "API.CreateSupplier")
	defer span.End()

	var out domain.Supplier
	if err := c.do(ctx, "suppliers.create", http.MethodPost, "/inventory/suppliers", nil, s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSupplier(ctx context.Context, id int64, s domain.Supplier) (*domain.Supplier, error) {
	ctx, span := tracer.Start(ctx, "API.UpdateSupplier")
	defer span.End()

	var out domain.Supplier
	if err := c.do(ctx, "suppliers.update", http.MethodPut, fmt.Sprintf("/inventory/suppliers/%d", id), nil, s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSupplier(ctx context.Context, id int64) error {
	ctx, span := tracer.Start(ctx, "API.DeleteSupplier")
	defer span.End()

	return c.do(ctx, "suppliers.delete", http.MethodDelete, fmt.Sprintf("/inventory/suppliers/%d", id), nil, nil, nil)
}
