package api

import (
	"context"
	"net/http"

	"github.com/stockpilot/stockpilot-go/internal/domain"
)

// Login posts credentials. The token pair is returned to the session store,
// which decides whether to persist it.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	ctx, span := tracer.Start(ctx, "API.Login")
	defer span.End()

	var out domain.AuthResponse
	if err := c.do(ctx, "auth.login", http.MethodPost, "/auth/login", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. Duplicate-email and validation failures
// surface the server's message verbatim in the returned error.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResponse, error) {
	ctx, span := tracer.Start(ctx, "API.Register")
	defer span.End()

	var out domain.AuthResponse
	if err := c.do(ctx, "auth.register", http.MethodPost, "/auth/register", nil, reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile fetches the current user's record.
func (c *Client) GetProfile(ctx context.Context) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "API.GetProfile")
	defer span.End()

	var out domain.User
	if err := c.do(ctx, "auth.profile", http.MethodGet, "/users/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile edits the current user's record and returns the updated
// copy.
func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "API.UpdateProfile")
	defer span.End()

	var out struct {
		User domain.User `json:"user"`
	}
	if err := c.do(ctx, "auth.profile.update", http.MethodPut, "/users/profile", nil, update, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
