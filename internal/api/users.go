package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stockpilot/stockpilot-go/internal/domain"
)

// User administration endpoints. The server enforces the admin requirement;
// the guard layer keeps non-admins from getting this far in the first place.

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, span := tracer.Start(ctx, "API.ListUsers")
	defer span.End()

	var out []domain.User
	if err := c.do(ctx, "users.list", http.MethodGet, "/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "API.GetUser")
	defer span.End()

	var out domain.User
	if err := c.do(ctx, "users.get", http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "API.UpdateUser")
	defer span.End()

	var out domain.User
	if err := c.do(ctx, "users.update", http.MethodPut, fmt.Sprintf("/users/%d", id), nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
