package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/storage"

	"go.opentelemetry.io/otel/attribute"
)

func (c *Client) ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	ctx, span := tracer.Start(ctx, "API.ListOrders")
	defer span.End()

	var out []domain.Order
	if err := c.do(ctx, "orders.list", http.MethodGet, "/orders", f.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "API.GetOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", id))

	var out domain.Order
	if err := c.do(ctx, "orders.get", http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "API.CreateOrder")
	defer span.End()

	var out domain.Order
	if err := c.do(ctx, "orders.create", http.MethodPost, "/orders", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus moves an order through its lifecycle and returns the
// server's updated copy.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "API.UpdateOrderStatus")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("order.id", id),
		attribute.String("order.status", string(status)),
	)

	payload := map[string]string{"status": string(status)}
	var out domain.Order
	if err := c.do(ctx, "orders.status", http.MethodPut, fmt.Sprintf("/orders/%d/status", id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	ctx, span := tracer.Start(ctx, "API.DeleteOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", id))

	return c.do(ctx, "orders.delete", http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil, nil)
}

// UploadOrderFile attaches a file to an order via multipart upload and
// returns the created attachment record. Multipart bodies bypass do: the
// auth-retry policy still applies, handled here explicitly because the
// form body has to be rebuilt per attempt.
func (c *Client) UploadOrderFile(ctx context.Context, orderID int64, filename string, content io.Reader) (*domain.OrderFile, error) {
	ctx, span := tracer.Start(ctx, "API.UploadOrderFile")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", orderID))

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}

	buildForm := func() ([]byte, string, error) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(data); err != nil {
			return nil, "", err
		}
		if err := w.Close(); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), w.FormDataContentType(), nil
	}

	path := fmt.Sprintf("/orders/%d/files", orderID)

	form, contentType, err := buildForm()
	if err != nil {
		return nil, err
	}

	body, status, err := c.send(ctx, http.MethodPost, path, nil, form, c.accessToken(ctx), contentType)
	if err != nil {
		c.metrics.IncrRequest("error")
		return nil, err
	}

	if status == http.StatusUnauthorized {
		if !c.state.Has(storage.KeyRefreshToken) {
			c.metrics.IncrRequest("error")
			return nil, c.decodeError("orders.upload", status, body)
		}

		token, refreshErr := c.refreshAccessToken(ctx)
		if refreshErr != nil {
			c.metrics.IncrRequest("error")
			return nil, c.forceLogout(refreshErr)
		}
		form, contentType, err = buildForm()
		if err != nil {
			return nil, err
		}
		body, status, err = c.send(ctx, http.MethodPost, path, nil, form, token, contentType)
		if err != nil {
			c.metrics.IncrRequest("error")
			return nil, err
		}
		if status == http.StatusUnauthorized {
			c.metrics.IncrRequest("error")
			return nil, c.forceLogout(c.decodeError("orders.upload", status, body))
		}
	}

	if status < 200 || status >= 300 {
		c.metrics.IncrRequest("error")
		return nil, c.decodeError("orders.upload", status, body)
	}

	c.metrics.IncrRequest("success")

	var out domain.OrderFile
	if err := unmarshalBody(body, &out); err != nil {
		return nil, &domain.ErrExternalService{Service: "orders.upload", Err: err}
	}
	return &out, nil
}
