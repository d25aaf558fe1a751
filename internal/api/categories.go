package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stockpilot/stockpilot-go/internal/domain"
)

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ctx, span := tracer.Start(ctx, "API.ListCategories")
	defer span.End()

	var out []domain.Category
	if err := c.do(ctx, "categories.list", http.MethodGet, "/inventory/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "API.GetCategory")
	defer span.End()

	var out domain.Category
	if err := c.do(ctx, "categories.get", http.MethodGet, fmt.Sprintf("/inventory/categories/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCategory(ctx context.Context, cat domain.Category) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "API.CreateCategory")
	defer span.End()

	var out domain.Category
	if err := c.do(ctx, "categories.create", http.MethodPost, "/inventory/categories", nil, cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, cat domain.Category) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "API.UpdateCategory")
	defer span.End()

	var out domain.Category
	if err := c.do(ctx, "categories.update", http.MethodPut, fmt.Sprintf("/inventory/categories/%d", id), nil, cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	ctx, span := tracer.Start(ctx, "API.DeleteCategory")
	defer span.End()

	return c.do(ctx, "categories.delete", http.MethodDelete, fmt.Sprintf("/inventory/categories/%d", id), nil, nil, nil)
}
