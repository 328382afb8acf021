package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/hash"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/simulate"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type gatewayVerifier interface {
	Verify(ctx context.Context, orderID string) (string, error)
}

// Notifier abstracts the transport towards the notification service: the
// queue and the direct /notify ingress honor the same contract.
type Notifier interface {
	Send(ctx context.Context, notification models.NotificationRequest) error
}

const (
	queryDelay       = 50 * time.Millisecond
	stockLevelDelay  = 40 * time.Millisecond
	reservationDelay = 30 * time.Millisecond
	cacheDelay       = 20 * time.Millisecond

	baseStockLevel = 100
)

type Service struct {
	log logger.Logger

	gateway  gatewayVerifier
	notifier Notifier

	reservations *expirable.LRU[string, int]
}

func New(
	log logger.Logger,
	gateway gatewayVerifier,
	notifier Notifier,
	reservations *expirable.LRU[string, int],
) *Service {
	return &Service{
		log:          log,
		gateway:      gateway,
		notifier:     notifier,
		reservations: reservations,
	}
}

// CheckInventory runs the fixed pipeline: database lookup, stock check,
// reservation, cache update. The gateway verify call and the notification
// are best-effort and never fail the request.
func (s *Service) CheckInventory(ctx context.Context, orderID string) (string, error) {
	const op = "services.inventory.CheckInventory"

	if err := s.queryDatabase(ctx, orderID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	stockLevel, err := s.checkStockLevel(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info(op, slog.String("order_id", orderID), slog.Int("stock_level", stockLevel))

	if err = s.reserveInventory(ctx, orderID, stockLevel); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err = s.updateCache(ctx, orderID, stockLevel); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if _, verifyErr := s.gateway.Verify(ctx, orderID); verifyErr != nil {
		s.log.Warn(op, slog.String("gateway verify failed", verifyErr.Error()))
	}

	s.notifyReserved(ctx, orderID)

	return fmt.Sprintf("inventory: stock available for order %s", orderID), nil
}

func (s *Service) queryDatabase(ctx context.Context, orderID string) error {
	const op = "services.inventory.queryDatabase"

	s.log.Debug(op, slog.String("order_id", orderID))

	return simulate.Work(ctx, queryDelay)
}

// checkStockLevel derives a synthetic quantity from the order id alone, so
// the same id always reports the same stock.
func (s *Service) checkStockLevel(ctx context.Context, orderID string) (int, error) {
	const op = "services.inventory.checkStockLevel"

	s.log.Debug(op, slog.String("order_id", orderID))

	if err := simulate.Work(ctx, stockLevelDelay); err != nil {
		return 0, err
	}

	return baseStockLevel + hash.Stable(orderID)%50, nil
}

func (s *Service) reserveInventory(ctx context.Context, orderID string, quantity int) error {
	const op = "services.inventory.reserveInventory"

	s.log.Debug(op, slog.String("order_id", orderID), slog.Int("quantity", quantity))

	return simulate.Work(ctx, reservationDelay)
}

func (s *Service) updateCache(ctx context.Context, orderID string, stockLevel int) error {
	const op = "services.inventory.updateCache"

	if err := simulate.Work(ctx, cacheDelay); err != nil {
		return err
	}

	_ = s.reservations.Add(orderID, stockLevel)

	s.log.Debug(op, slog.String("order_id", orderID))

	return nil
}

func (s *Service) notifyReserved(ctx context.Context, orderID string) {
	const op = "services.inventory.notifyReserved"

	notification := models.NotificationRequest{
		OrderID:          orderID,
		Type:             models.NotificationOrderUpdate,
		Status:           "RESERVED",
		Channel:          models.ChannelEmail,
		CallbackRequired: true,
	}

	if err := s.notifier.Send(ctx, notification); err != nil {
		s.log.Warn(op, slog.String("notify failed", err.Error()))
		return
	}

	s.log.Info(op, slog.String("order_id", orderID))
}
