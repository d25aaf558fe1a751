// Package api wraps every outbound call to the inventory backend. It owns
// bearer-token attachment, the single refresh-and-replay on 401, structured
// error extraction, and per-resource endpoint methods. Nothing above this
// package builds HTTP requests.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/infra/observability"
	"github.com/stockpilot/stockpilot-go/internal/infra/resilience"
	"github.com/stockpilot/stockpilot-go/internal/storage"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var tracer = otel.Tracer("api")

// Client wraps HTTP calls to the inventory backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	state      *storage.Store
	cb         *gobreaker.CircuitBreaker
	bulkhead   *resilience.Bulkhead
	metrics    *observability.Metrics
	logger     *zap.Logger

	// refreshGroup collapses concurrent 401s into one refresh call.
	refreshGroup singleflight.Group

	// onAuthExpired fires after an irrecoverable 401 (refresh failed or
	// impossible); both tokens are already cleared when it runs.
	onAuthExpired func()
}

// NewClient creates a backend client. baseURL is the API root, e.g.
// "https://host/api".
func NewClient(httpClient *http.Client, baseURL string, state *storage.Store, cb *gobreaker.CircuitBreaker, bulkhead *resilience.Bulkhead, metrics *observability.Metrics, logger *zap.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		state:      state,
		cb:         cb,
		bulkhead:   bulkhead,
		metrics:    metrics,
		logger:     logger,
	}
}

// SetAuthExpiredHandler registers the forced-logout hook.
func (c *Client) SetAuthExpiredHandler(fn func()) {
	c.onAuthExpired = fn
}

// do executes one JSON request against the backend and decodes the reply
// into out (when non-nil). On a 401 it attempts exactly one token refresh
// and replays the original request with the new token; a second 401 clears
// both tokens and signals forced logout.
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body any, out any) error {
	if err := c.bulkhead.Acquire(ctx); err != nil {
		return err
	}
	defer c.bulkhead.Release()

	start := time.Now()
	defer func() {
		c.metrics.RecordRequestDuration(operation, time.Since(start))
	}()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	token := c.accessToken(ctx)

	respBody, status, err := c.send(ctx, method, path, query, payload, token, "application/json")
	if err != nil {
		c.metrics.IncrRequest("error")
		return err
	}

	if status == http.StatusUnauthorized {
		// Without a refresh token there is no session to salvage or
		// tear down: hand back the server's reply as-is. This is the
		// normal shape of a failed anonymous login.
		if !c.state.Has(storage.KeyRefreshToken) {
			c.metrics.IncrRequest("error")
			return c.decodeError(operation, status, respBody)
		}

		newToken, refreshErr := c.refreshAccessToken(ctx)
		if refreshErr != nil {
			c.metrics.IncrRequest("error")
			return c.forceLogout(refreshErr)
		}

		respBody, status, err = c.send(ctx, method, path, query, payload, newToken, "application/json")
		if err != nil {
			c.metrics.IncrRequest("error")
			return err
		}
		if status == http.StatusUnauthorized {
			c.metrics.IncrRequest("error")
			return c.forceLogout(c.decodeError(operation, status, respBody))
		}
	}

	if status < 200 || status >= 300 {
		c.metrics.IncrRequest("error")
		c.logger.Warn("api: non-2xx response",
			zap.String("operation", operation),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
		return c.decodeError(operation, status, respBody)
	}

	c.metrics.IncrRequest("success")
	c.logger.Debug("api: request OK",
		zap.String("operation", operation),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
	)

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &domain.ErrExternalService{Service: operation, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// send performs a single HTTP exchange through the circuit breaker and
// returns the raw body and status. Non-2xx is NOT an error at this level;
// do decides what a status means.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, token, contentType string) ([]byte, int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	result, err := c.cb.Execute(func() (any, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return nil, err
		}
		if payload != nil {
			req.Header.Set("Content-Type", contentType)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", uuid.NewString())
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Error("api: request failed",
				zap.String("method", method),
				zap.String("path", path),
				zap.Error(err),
			)
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return exchange{body: body, status: resp.StatusCode}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, 0, &domain.ErrCircuitOpen{Service: "inventory-api"}
		}
		return nil, 0, &domain.ErrExternalService{Service: "inventory-api", Err: err}
	}

	ex := result.(exchange)
	return ex.body, ex.status, nil
}

type exchange struct {
	body   []byte
	status int
}

// accessToken returns the persisted token, refreshing proactively when the
// token is about to expire and a refresh token is on hand.
func (c *Client) accessToken(ctx context.Context) string {
	token := c.state.Get(storage.KeyAccessToken)
	if token == "" {
		return ""
	}
	if tokenExpiringSoon(token) && c.state.Has(storage.KeyRefreshToken) {
		if fresh, err := c.refreshAccessToken(ctx); err == nil {
			return fresh
		}
		// Let the request go out with the stale token; the 401 path
		// handles the rest.
	}
	return token
}

// refreshAccessToken exchanges the persisted refresh token for a new access
// token. Concurrent callers share one network call.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	v, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		refresh := c.state.Get(storage.KeyRefreshToken)
		if refresh == "" {
			c.metrics.IncrTokenRefresh("failure")
			return nil, &domain.ErrUnauthorized{Message: "session expired"}
		}

		ctx, span := tracer.Start(ctx, "API.RefreshToken")
		defer span.End()

		body, status, err := c.send(ctx, http.MethodPost, "/auth/refresh", nil, []byte("{}"), refresh, "application/json")
		if err != nil {
			c.metrics.IncrTokenRefresh("failure")
			return nil, err
		}
		if status < 200 || status >= 300 {
			c.metrics.IncrTokenRefresh("failure")
			span.SetAttributes(attribute.Int("http.status_code", status))
			return nil, c.decodeError("auth.refresh", status, body)
		}

		var reply struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		}
		if err := json.Unmarshal(body, &reply); err != nil {
			c.metrics.IncrTokenRefresh("failure")
			return nil, &domain.ErrExternalService{Service: "auth.refresh", Err: err}
		}

		if err := c.state.Set(storage.KeyAccessToken, reply.AccessToken); err != nil {
			return nil, err
		}
		if reply.RefreshToken != "" {
			// Server rotated the refresh token.
			if err := c.state.Set(storage.KeyRefreshToken, reply.RefreshToken); err != nil {
				return nil, err
			}
		}

		c.metrics.IncrTokenRefresh("success")
		c.logger.Debug("api: access token refreshed")
		return reply.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// forceLogout clears both persisted tokens and fires the auth-expired hook.
func (c *Client) forceLogout(cause error) error {
	_ = c.state.Delete(storage.KeyAccessToken)
	_ = c.state.Delete(storage.KeyRefreshToken)

	c.logger.Warn("api: irrecoverable auth failure, tokens cleared", zap.Error(cause))
	if c.onAuthExpired != nil {
		c.onAuthExpired()
	}

	var uerr *domain.ErrUnauthorized
	if errors.As(cause, &uerr) {
		return uerr
	}
	return &domain.ErrUnauthorized{Message: cause.Error()}
}

// decodeError maps a non-2xx reply to a typed error, extracting the
// server's message payload when one exists, and counts the failure
// against the operation's resource.
func (c *Client) decodeError(operation string, status int, body []byte) error {
	c.metrics.IncrAPIError(resourceOf(operation))
	msg := extractMessage(body)

	switch status {
	case http.StatusUnauthorized:
		return &domain.ErrUnauthorized{Message: msg}
	case http.StatusForbidden:
		return &domain.ErrForbidden{Message: msg}
	case http.StatusNotFound:
		return &domain.ErrNotFound{Resource: resourceOf(operation), Message: msg}
	default:
		return &domain.APIError{Status: status, Message: msg}
	}
}

// resourceOf strips the verb from an operation name: "products.list"
// counts against "products".
func resourceOf(operation string) string {
	if i := strings.IndexByte(operation, '.'); i > 0 {
		return operation[:i]
	}
	return operation
}

// unmarshalBody decodes a JSON reply, tolerating empty bodies.
func unmarshalBody(body []byte, out any) error {
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// extractMessage pulls the human-readable text out of an error payload.
// The backend replies {"message": …}; validation failures add an "errors"
// map whose entries are joined. Unstructured bodies yield "".
func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var payload struct {
		Message string              `json:"message"`
		Msg     string              `json:"msg"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	msg := payload.Message
	if msg == "" {
		msg = payload.Msg
	}
	if len(payload.Errors) > 0 {
		joined := ""
		for _, list := range payload.Errors {
			for _, e := range list {
				if joined != "" {
					joined += ", "
				}
				joined += e
			}
		}
		if joined != "" {
			msg = joined
		}
	}
	return msg
}
