package clients

import (
	"context"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
)

//go:generate mockgen -source=clients.go -destination=mocks/mock_clients.go -package=mocks

// OrderProcessor is the order service as seen by the gateway.
type OrderProcessor interface {
	ProcessOrder(ctx context.Context, orderID string) (string, error)
}

// InventoryChecker is the inventory service as seen by the gateway and the
// order service.
type InventoryChecker interface {
	CheckInventory(ctx context.Context, orderID string) (string, error)
}

// GatewayCallbacker is the callback surface the gateway exposes to downstream
// and asynchronous components. Both operations are idempotent on the gateway
// side, so at-least-once invocation is safe.
type GatewayCallbacker interface {
	ProcessCallback(ctx context.Context, orderID string) (string, error)
	Verify(ctx context.Context, orderID string) (string, error)
}

// NotificationSender is the notification service's direct HTTP ingress.
type NotificationSender interface {
	Notify(ctx context.Context, notification models.NotificationRequest) (string, error)
}
