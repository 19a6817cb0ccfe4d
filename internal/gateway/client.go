// Package gateway is the HTTP client for the commerce backend that owns
// orders and payments. The gateway performs no retries and sets no
// deadline of its own; callers decide how long a submission may run.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tienda/internal/models"
)

const (
	ordersPath   = "/orders"
	paymentsPath = "/payments"

	// Default detail messages when an error body carries none.
	defaultOrderError   = "Error al crear la orden"
	defaultPaymentError = "Error processing payment"
)

// Client talks to the commerce backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// CreateOrder creates an order for the given cart items and returns the
// id the backend assigned to it.
func (c *Client) CreateOrder(ctx context.Context, token string, items []models.OrderItem) (models.OrderID, error) {
	body, err := c.post(ctx, ordersPath, token, models.CreateOrderRequest{Items: items}, defaultOrderError)
	if err != nil {
		return "", err
	}

	var resp models.CreateOrderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("gateway: decode order response: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("gateway: order response missing id")
	}
	return resp.ID, nil
}

// SubmitPayment submits a charge for a previously created order.
func (c *Client) SubmitPayment(ctx context.Context, token string, req models.PaymentRequest) error {
	_, err := c.post(ctx, paymentsPath, token, req, defaultPaymentError)
	return err
}

// post sends an authenticated JSON POST and returns the raw success
// body. Non-2xx responses become an *APIError carrying the server's
// detail message or defaultDetail.
func (c *Client) post(ctx context.Context, path, token string, payload any, defaultDetail string) ([]byte, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("gateway: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := defaultDetail
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
			detail = eb.Detail
		}
		return nil, &APIError{Status: resp.StatusCode, Detail: detail}
	}

	return body, nil
}
