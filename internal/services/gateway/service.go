package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	internalErrors "github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/errors"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/simulate"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type orderProcessor interface {
	ProcessOrder(ctx context.Context, orderID string) (string, error)
}

type inventoryChecker interface {
	CheckInventory(ctx context.Context, orderID string) (string, error)
}

type notificationPublisher interface {
	Publish(ctx context.Context, notification models.NotificationRequest) error
}

const callbackDelay = 25 * time.Millisecond

type Service struct {
	log logger.Logger

	order     orderProcessor
	inventory inventoryChecker
	publisher notificationPublisher

	// Orders whose callback already arrived. Callbacks come in over
	// at-least-once paths, so repeats must be observably equivalent to the
	// first call.
	processedCallbacks *expirable.LRU[string, time.Time]
}

func New(
	log logger.Logger,
	order orderProcessor,
	inventory inventoryChecker,
	publisher notificationPublisher,
	processedCallbacks *expirable.LRU[string, time.Time],
) *Service {
	return &Service{
		log:                log,
		order:              order,
		inventory:          inventory,
		publisher:          publisher,
		processedCallbacks: processedCallbacks,
	}
}

// HandleOrder fans out to the order and inventory services, waits for both,
// and composes their responses. An empty id is rejected before any downstream
// call is made. Downstream failures are surfaced unmodified; the ORDER_CREATED
// notification is best-effort.
func (s *Service) HandleOrder(ctx context.Context, orderID string) (string, error) {
	const op = "services.gateway.HandleOrder"

	if orderID == "" {
		return "", fmt.Errorf("%s: %w: order id cannot be empty", op, internalErrors.ErrInvalidArgument)
	}

	s.log.Info(op,
		slog.String("order_id", orderID),
		slog.Int64("received_at", time.Now().UnixMilli()),
		slog.String("source", "gateway"),
	)

	var orderResponse, inventoryResponse string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		response, err := s.order.ProcessOrder(gctx, orderID)
		if err != nil {
			return err
		}
		orderResponse = response
		return nil
	})
	g.Go(func() error {
		response, err := s.inventory.CheckInventory(gctx, orderID)
		if err != nil {
			return err
		}
		inventoryResponse = response
		return nil
	})

	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.publishCreated(ctx, orderID)

	return fmt.Sprintf("gateway -> %s | %s", orderResponse, inventoryResponse), nil
}

// ProcessCallback acknowledges an asynchronous callback for an order. Safe to
// call any number of times for the same id: repeats are detected and answered
// identically.
func (s *Service) ProcessCallback(ctx context.Context, orderID string) (string, error) {
	const op = "services.gateway.ProcessCallback"

	if err := simulate.Work(ctx, callbackDelay); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if _, seen := s.processedCallbacks.Get(orderID); seen {
		s.log.Debug(op, slog.String("duplicate callback", orderID))
	} else {
		_ = s.processedCallbacks.Add(orderID, time.Now())
		s.log.Info(op, slog.String("order_id", orderID))
	}

	return fmt.Sprintf("callback processed for order %s", orderID), nil
}

// Verify acknowledges an asynchronous verification request. Idempotent.
func (s *Service) Verify(ctx context.Context, orderID string) (string, error) {
	const op = "services.gateway.Verify"

	if err := simulate.Work(ctx, callbackDelay); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info(op, slog.String("order_id", orderID))

	return fmt.Sprintf("order %s verified", orderID), nil
}

func (s *Service) publishCreated(ctx context.Context, orderID string) {
	const op = "services.gateway.publishCreated"

	notification := models.NotificationRequest{
		OrderID:          orderID,
		Type:             models.NotificationOrderCreated,
		Status:           "CREATED",
		Channel:          models.ChannelEmail,
		CallbackRequired: true,
	}

	if err := s.publisher.Publish(ctx, notification); err != nil {
		s.log.Warn(op, slog.String("publish failed", err.Error()))
		return
	}

	s.log.Info(op, slog.String("order_id", orderID))
}
