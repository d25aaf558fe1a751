package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stockpilot/stockpilot-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// ListProducts fetches the catalog filtered by f.
func (c *Client) ListProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "API.ListProducts")
	defer span.End()

	var out []domain.Product
	if err := c.do(ctx, "products.list", http.MethodGet, "/inventory/products", f.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "API.GetProduct")
	defer span.End()
	span.SetAttributes(attribute.Int64("product.id", id))

	var out domain.Product
	if err := c.do(ctx, "products.get", http.MethodGet, fmt.Sprintf("/inventory/products/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct creates a catalog item and returns the server's copy.
func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "API.CreateProduct")
	defer span.End()

	var out domain.Product
	if err := c.do(ctx, "products.create", http.MethodPost, "/inventory/products", nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct edits a catalog item and returns the server's copy.
func (c *Client) UpdateProduct(ctx context.Context, id int64, p domain.Product) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "API.UpdateProduct")
	defer span.End()
	span.SetAttributes(attribute.Int64("product.id", id))

	var out domain.Product
	if err := c.do(ctx, "products.update", http.MethodPut, fmt.Sprintf("/inventory/products/%d", id), nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes a catalog item.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	ctx, span := tracer.Start(ctx, "API.DeleteProduct")
	defer span.End()
	span.SetAttributes(attribute.Int64("product.id", id))

	return c.do(ctx, "products.delete", http.MethodDelete, fmt.Sprintf("/inventory/products/%d", id), nil, nil, nil)
}

// ListLowStockProducts fetches products flagged below their threshold.
// The flag is computed server-side.
func (c *Client) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "API.ListLowStockProducts")
	defer span.End()

	var out []domain.Product
	if err := c.do(ctx, "products.low_stock", http.MethodGet, "/inventory/low_stock", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListInventoryLogs fetches the stock-movement history of one product.
func (c *Client) ListInventoryLogs(ctx context.Context, productID int64) ([]domain.InventoryLog, error) {
	ctx, span := tracer.Start(ctx, "API.ListInventoryLogs")
	defer span.End()
	span.SetAttributes(attribute.Int64("product.id", productID))

	var out []domain.InventoryLog
	if err := c.do(ctx, "products.logs", http.MethodGet, fmt.Sprintf("/inventory/products/%d/inventory_logs", productID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
