package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	internalErrors "github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/errors"
)

// OrderClient calls the order service over HTTP.
type OrderClient struct {
	baseURL string
	client  *http.Client
}

func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	return &OrderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *OrderClient) ProcessOrder(ctx context.Context, orderID string) (string, error) {
	const op = "clients.order.ProcessOrder"

	return get(ctx, op, c.client, c.baseURL+"/order/"+url.PathEscape(orderID))
}

// InventoryClient calls the inventory service over HTTP.
type InventoryClient struct {
	baseURL string
	client  *http.Client
}

func NewInventoryClient(baseURL string, timeout time.Duration) *InventoryClient {
	return &InventoryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *InventoryClient) CheckInventory(ctx context.Context, orderID string) (string, error) {
	const op = "clients.inventory.CheckInventory"

	return get(ctx, op, c.client, c.baseURL+"/inventory/"+url.PathEscape(orderID))
}

// GatewayClient calls back into the gateway's callback/verify endpoints.
type GatewayClient struct {
	baseURL string
	client  *http.Client
}

func NewGatewayClient(baseURL string, timeout time.Duration) *GatewayClient {
	return &GatewayClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *GatewayClient) ProcessCallback(ctx context.Context, orderID string) (string, error) {
	const op = "clients.gateway.ProcessCallback"

	return get(ctx, op, c.client, c.baseURL+"/api/callback/"+url.PathEscape(orderID))
}

func (c *GatewayClient) Verify(ctx context.Context, orderID string) (string, error) {
	const op = "clients.gateway.Verify"

	return get(ctx, op, c.client, c.baseURL+"/verify/"+url.PathEscape(orderID))
}

// NotificationClient posts a notification straight to the notification
// service's /notify ingress, bypassing the broker.
type NotificationClient struct {
	baseURL string
	client  *http.Client
}

func NewNotificationClient(baseURL string, timeout time.Duration) *NotificationClient {
	return &NotificationClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *NotificationClient) Notify(ctx context.Context, notification models.NotificationRequest) (string, error) {
	const op = "clients.notification.Notify"

	body, err := json.Marshal(notification)
	if err != nil {
		return "", fmt.Errorf("%s: marshal notification: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/notify", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return do(op, c.client, req)
}

func get(ctx context.Context, op string, client *http.Client, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return do(op, client, req)
}

func do(op string, client *http.Client, req *http.Request) (string, error) {
	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%s: %w: %s", op, internalErrors.ErrTimeout, err.Error())
		}

		return "", fmt.Errorf("%s: %w: %s", op, internalErrors.ErrInternal, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode != http.StatusOK {
		// Keep the downstream category intact on its way up the chain.
		return "", fmt.Errorf("%s: %w", op, internalErrors.FromStatusCode(resp.StatusCode, strings.TrimSpace(string(body))))
	}

	return string(body), nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return errors.Is(err, context.DeadlineExceeded)
}
