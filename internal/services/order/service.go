package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	internalErrors "github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/errors"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/hash"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/simulate"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type inventoryChecker interface {
	CheckInventory(ctx context.Context, orderID string) (string, error)
}

type gatewayCallbacker interface {
	ProcessCallback(ctx context.Context, orderID string) (string, error)
}

type notificationPublisher interface {
	Publish(ctx context.Context, notification models.NotificationRequest) error
}

const (
	eligibilityDelay   = 50 * time.Millisecond
	amountDelay        = 30 * time.Millisecond
	businessRulesDelay = 20 * time.Millisecond

	baseAmount = 99.99
)

// Reserved order ids that short-circuit processing into a specific failure
// class, so the whole chain can be exercised against each category without
// real downstream faults.
var sentinelFailures = map[string]error{
	"timeout-order":   fmt.Errorf("%w: order processing timeout exceeded", internalErrors.ErrTimeout),
	"invalid-order":   fmt.Errorf("%w: invalid order id format", internalErrors.ErrInvalidArgument),
	"not-found-order": fmt.Errorf("%w: order not found in database", internalErrors.ErrNotFound),
	"db-error-order":  fmt.Errorf("%w: database connection failed", internalErrors.ErrInternal),
}

type Service struct {
	log logger.Logger

	inventory inventoryChecker
	gateway   gatewayCallbacker
	publisher notificationPublisher
}

func New(
	log logger.Logger,
	inventory inventoryChecker,
	gateway gatewayCallbacker,
	publisher notificationPublisher,
) *Service {
	return &Service{
		log:       log,
		inventory: inventory,
		gateway:   gateway,
		publisher: publisher,
	}
}

// ProcessOrder runs the order pipeline: eligibility, amount, inventory,
// business rules, then the best-effort gateway callback and notification.
// Inventory failures propagate as-is; the two side effects never fail the
// request.
func (s *Service) ProcessOrder(ctx context.Context, orderID string) (string, error) {
	const op = "services.order.ProcessOrder"

	if err, ok := sentinelFailures[orderID]; ok {
		s.log.Error(op, slog.String("order_id", orderID), slog.String("error", err.Error()))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.checkEligibility(ctx, orderID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	amount, err := s.calculateAmount(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info(op, slog.String("order_id", orderID), slog.Float64("amount", amount))

	inventoryResponse, err := s.inventory.CheckInventory(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err = s.applyBusinessRules(ctx, orderID, amount); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if _, callbackErr := s.gateway.ProcessCallback(ctx, orderID); callbackErr != nil {
		s.log.Warn(op, slog.String("gateway callback failed", callbackErr.Error()))
	}

	s.publishProcessed(ctx, orderID)

	return fmt.Sprintf("order %s processed ($%.2f) -> %s", orderID, amount, inventoryResponse), nil
}

func (s *Service) checkEligibility(ctx context.Context, orderID string) error {
	const op = "services.order.checkEligibility"

	s.log.Debug(op, slog.String("order_id", orderID))

	return simulate.Work(ctx, eligibilityDelay)
}

// calculateAmount is a pure function of the order id: recomputing for the
// same id always yields the same amount.
func (s *Service) calculateAmount(ctx context.Context, orderID string) (float64, error) {
	const op = "services.order.calculateAmount"

	s.log.Debug(op, slog.String("order_id", orderID))

	if err := simulate.Work(ctx, amountDelay); err != nil {
		return 0, err
	}

	return baseAmount + float64(hash.Stable(orderID)%100), nil
}

// applyBusinessRules is a pass-through hook for real rule evaluation.
func (s *Service) applyBusinessRules(ctx context.Context, orderID string, amount float64) error {
	const op = "services.order.applyBusinessRules"

	s.log.Debug(op, slog.String("order_id", orderID), slog.Float64("amount", amount))

	return simulate.Work(ctx, businessRulesDelay)
}

func (s *Service) publishProcessed(ctx context.Context, orderID string) {
	const op = "services.order.publishProcessed"

	notification := models.NotificationRequest{
		OrderID:          orderID,
		Type:             models.NotificationOrderProcessed,
		Status:           "PROCESSED",
		Channel:          models.ChannelSMS,
		CallbackRequired: false,
	}

	if err := s.publisher.Publish(ctx, notification); err != nil {
		s.log.Warn(op, slog.String("publish failed", err.Error()))
		return
	}

	s.log.Info(op, slog.String("order_id", orderID))
}
