package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/stockpilot/stockpilot-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// Analytics endpoints. Everything here is computed server-side (forecasting
// model, SQL aggregation); the client renders results as-is.

// GetForecast fetches predicted demand for one product over the next
// days days (server default when days <= 0).
func (c *Client) GetForecast(ctx context.Context, productID int64, days int) ([]domain.ForecastPoint, error) {
	ctx, span := tracer.Start(ctx, "API.GetForecast")
	defer span.End()
	span.SetAttributes(attribute.Int64("product.id", productID))

	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}

	var out []domain.ForecastPoint
	if err := c.do(ctx, "analytics.forecast", http.MethodGet, fmt.Sprintf("/analytics/forecast/%d", productID), q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRestockRecommendations fetches products the model expects to cross
// their low-stock threshold.
func (c *Client) GetRestockRecommendations(ctx context.Context) ([]domain.RestockRecommendation, error) {
	ctx, span := tracer.Start(ctx, "API.GetRestockRecommendations")
	defer span.End()

	var out []domain.RestockRecommendation
	if err := c.do(ctx, "analytics.restock", http.MethodGet, "/analytics/restock-recommendations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TrainModel triggers a forecasting-model (re)train, scoped to one product
// when productID > 0.
func (c *Client) TrainModel(ctx context.Context, productID int64) error {
	ctx, span := tracer.Start(ctx, "API.TrainModel")
	defer span.End()

	payload := map[string]any{}
	if productID > 0 {
		payload["product_id"] = productID
	}
	return c.do(ctx, "analytics.train", http.MethodPost, "/analytics/train-model", nil, payload, nil)
}

// GetSalesTrends fetches daily aggregated sales for the last period days.
func (c *Client) GetSalesTrends(ctx context.Context, period int) ([]domain.SalesTrendPoint, error) {
	ctx, span := tracer.Start(ctx, "API.GetSalesTrends")
	defer span.End()

	q := url.Values{}
	if period > 0 {
		q.Set("period", strconv.Itoa(period))
	}

	var out []domain.SalesTrendPoint
	if err := c.do(ctx, "analytics.trends", http.MethodGet, "/analytics/sales-trends", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCategoryDistribution fetches the catalog's share per category.
func (c *Client) GetCategoryDistribution(ctx context.Context) ([]domain.CategoryShare, error) {
	ctx, span := tracer.Start(ctx, "API.GetCategoryDistribution")
	defer span.End()

	var out []domain.CategoryShare
	if err := c.do(ctx, "analytics.categories", http.MethodGet, "/analytics/category-distribution", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTopProducts fetches the best-sellers ranking for the last period days.
func (c *Client) GetTopProducts(ctx context.Context, period int) ([]domain.TopProduct, error) {
	ctx, span := tracer.Start(ctx, "API.GetTopProducts")
	defer span.End()

	q := url.Values{}
	if period > 0 {
		q.Set("period", strconv.Itoa(period))
	}

	var out []domain.TopProduct
	if err := c.do(ctx, "analytics.top", http.MethodGet, "/analytics/top-products", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDashboardStats fetches the headline figures block.
func (c *Client) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	ctx, span := tracer.Start(ctx, "API.GetDashboardStats")
	defer span.End()

	var out domain.DashboardStats
	if err := c.do(ctx, "analytics.dashboard", http.MethodGet, "/analytics/dashboard-stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
