// Package fulfillment provides the HTTP client for the external
// fulfillment service that ships returns back to the warehouse.
package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"returns/internal/core/ports"
)

// Config holds fulfillment client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DefaultTimeout applies when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Client implements the FulfillmentProvider port against a JSON HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a fulfillment client with connection pooling and the
// configured request timeout.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// createReturnRequest is the wire format for a return fulfillment request.
type createReturnRequest struct {
	ReturnID       string                `json:"return_id"`
	Items          []fulfillmentItem     `json:"items"`
	ShippingMethod shippingMethodPayload `json:"shipping_method"`
}

type fulfillmentItem struct {
	ItemID    string `json:"item_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

type shippingMethodPayload struct {
	ID       string `json:"id"`
	OptionID string `json:"option_id"`
	Price    int64  `json:"price"`
}

// CreateReturn registers the return shipment with the fulfillment service
// and returns the provider's response payload verbatim.
func (c *Client) CreateReturn(
	ctx context.Context, fulfillment ports.ReturnFulfillment,
) (map[string]any, error) {
	payload := createReturnRequest{
		ReturnID: fulfillment.ReturnID.String(),
		Items:    make([]fulfillmentItem, 0, len(fulfillment.Items)),
		ShippingMethod: shippingMethodPayload{
			ID:       fulfillment.ShippingMethod.ID.String(),
			OptionID: fulfillment.ShippingMethod.OptionID.String(),
			Price:    fulfillment.ShippingMethod.Price,
		},
	}
	for _, item := range fulfillment.Items {
		payload.Items = append(payload.Items, fulfillmentItem{
			ItemID:    item.LineItem.ID.String(),
			VariantID: item.LineItem.VariantID.String(),
			Quantity:  item.Quantity,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal fulfillment request: %w", err)
	}

	url := c.baseURL + "/returns"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create fulfillment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fulfillment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("fulfillment service returned status %d: %s",
			resp.StatusCode, string(message))
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode fulfillment response: %w", err)
	}

	return data, nil
}
