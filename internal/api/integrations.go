package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/stockpilot/stockpilot-go/internal/domain"
)

// Address/company suggestion lookups, proxied by the backend. Used when
// filling supplier and shipping-address fields.

func (c *Client) SuggestAddresses(ctx context.Context, query string, count int) ([]domain.AddressSuggestion, error) {
	ctx, span := tracer.Start(ctx, "API.SuggestAddresses")
	defer span.End()

	q := url.Values{}
	q.Set("query", query)
	if count > 0 {
		q.Set("count", strconv.Itoa(count))
	}

	var out []domain.AddressSuggestion
	if err := c.do(ctx, "integrations.address", http.MethodGet, "/integrations/dadata/address", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SuggestCompanies(ctx context.Context, query string, count int) ([]domain.CompanySuggestion, error) {
	ctx, span := tracer.Start(ctx, "API.SuggestCompanies")
	defer span.End()

	q := url.Values{}
	q.Set("query", query)
	if count > 0 {
		q.Set("count", strconv.Itoa(count))
	}

	var out []domain.CompanySuggestion
	if err := c.do(ctx, "integrations.company", http.MethodGet, "/integrations/dadata/company", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
