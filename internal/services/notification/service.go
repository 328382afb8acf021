package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	internalErrors "github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/errors"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/simulate"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type gatewayCallbacker interface {
	ProcessCallback(ctx context.Context, orderID string) (string, error)
}

// AuditStore records delivered notifications. Failures never abort delivery.
type AuditStore interface {
	Insert(ctx context.Context, notification models.NotificationRequest, message string) error
}

const (
	validateDelay = 20 * time.Millisecond
	prepareDelay  = 30 * time.Millisecond
	enrichDelay   = 40 * time.Millisecond
	formatDelay   = 25 * time.Millisecond
	deliverDelay  = 50 * time.Millisecond
	templateDelay = 30 * time.Millisecond
	sendDelay     = 40 * time.Millisecond
	auditDelay    = 15 * time.Millisecond
	statusDelay   = 35 * time.Millisecond
)

const messageTemplate = "Dear Customer, your order {{orderId}} is {{status}}"

type Service struct {
	log logger.Logger

	gateway gatewayCallbacker
	audit   AuditStore
}

func New(log logger.Logger, gateway gatewayCallbacker, audit AuditStore) *Service {
	return &Service{
		log:     log,
		gateway: gateway,
		audit:   audit,
	}
}

// ProcessNotification handles one message delivered from the queue:
// prepare, enrich, format, deliver, then the conditional gateway callback.
// Delivery is at-least-once upstream, so the whole pipeline tolerates being
// run twice for the same message.
func (s *Service) ProcessNotification(ctx context.Context, notification models.NotificationRequest) error {
	const op = "services.notification.ProcessNotification"

	s.log.Info(op,
		slog.String("order_id", notification.OrderID),
		slog.String("type", notification.Type),
	)

	if err := s.prepare(ctx, notification); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.enrich(ctx, notification); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.formatContent(ctx, notification); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.deliver(ctx, notification); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if notification.CallbackRequired {
		s.triggerCallback(ctx, notification.OrderID)
	}

	return nil
}

// Send handles a notification submitted over the direct HTTP ingress:
// validate, load template, personalize, send to channel, audit, then the
// conditional gateway callback. Returns the personalized message.
func (s *Service) Send(ctx context.Context, notification models.NotificationRequest) (string, error) {
	const op = "services.notification.Send"

	if err := s.validate(ctx, notification); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	template, err := s.loadTemplate(ctx, notification.Type)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	message, err := s.personalize(ctx, template, notification)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err = s.sendToChannel(ctx, notification.Channel, message); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.auditNotification(ctx, notification, message)

	if notification.CallbackRequired {
		s.triggerCallback(ctx, notification.OrderID)
	}

	s.log.Info(op, slog.String("order_id", notification.OrderID))

	return message, nil
}

// Status reports a synthetic delivery status: no notification history is
// kept, only the audit trail.
func (s *Service) Status(ctx context.Context, orderID string) (string, error) {
	const op = "services.notification.Status"

	if err := simulate.Work(ctx, statusDelay); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug(op, slog.String("order_id", orderID))

	return "DELIVERED", nil
}

func (s *Service) validate(ctx context.Context, notification models.NotificationRequest) error {
	if err := simulate.Work(ctx, validateDelay); err != nil {
		return err
	}

	if notification.OrderID == "" {
		return fmt.Errorf("%w: order id is required", internalErrors.ErrInvalidArgument)
	}

	return nil
}

// loadTemplate is keyed by notification type so real template storage can be
// substituted; unknown types fall through to the default template rather than
// being rejected.
func (s *Service) loadTemplate(ctx context.Context, notificationType string) (string, error) {
	const op = "services.notification.loadTemplate"

	s.log.Debug(op, slog.String("type", notificationType))

	if err := simulate.Work(ctx, templateDelay); err != nil {
		return "", err
	}

	return messageTemplate, nil
}

func (s *Service) personalize(ctx context.Context, template string, notification models.NotificationRequest) (string, error) {
	if err := simulate.Work(ctx, formatDelay); err != nil {
		return "", err
	}

	return personalizeMessage(template, notification), nil
}

// personalizeMessage substitutes every placeholder occurrence; the result
// never contains a leftover {{orderId}} or {{status}}.
func personalizeMessage(template string, notification models.NotificationRequest) string {
	message := strings.ReplaceAll(template, "{{orderId}}", notification.OrderID)
	return strings.ReplaceAll(message, "{{status}}", notification.Status)
}

func (s *Service) sendToChannel(ctx context.Context, channel, message string) error {
	const op = "services.notification.sendToChannel"

	s.log.Debug(op, slog.String("channel", channel), slog.String("message", message))

	return simulate.Work(ctx, sendDelay)
}

func (s *Service) auditNotification(ctx context.Context, notification models.NotificationRequest, message string) {
	const op = "services.notification.auditNotification"

	if err := simulate.Work(ctx, auditDelay); err != nil {
		return
	}

	if err := s.audit.Insert(ctx, notification, message); err != nil {
		s.log.Warn(op, slog.String("audit failed", err.Error()))
	}
}

func (s *Service) prepare(ctx context.Context, notification models.NotificationRequest) error {
	const op = "services.notification.prepare"

	s.log.Debug(op, slog.String("order_id", notification.OrderID))

	return simulate.Work(ctx, prepareDelay)
}

func (s *Service) enrich(ctx context.Context, notification models.NotificationRequest) error {
	const op = "services.notification.enrich"

	s.log.Debug(op, slog.String("order_id", notification.OrderID))

	return simulate.Work(ctx, enrichDelay)
}

func (s *Service) formatContent(ctx context.Context, notification models.NotificationRequest) error {
	const op = "services.notification.formatContent"

	s.log.Debug(op, slog.String("order_id", notification.OrderID))

	return simulate.Work(ctx, formatDelay)
}

func (s *Service) deliver(ctx context.Context, notification models.NotificationRequest) error {
	const op = "services.notification.deliver"

	s.log.Debug(op,
		slog.String("order_id", notification.OrderID),
		slog.String("channel", notification.Channel),
	)

	return simulate.Work(ctx, deliverDelay)
}

// triggerCallback is best-effort: a failed callback is logged and the message
// is still considered delivered.
func (s *Service) triggerCallback(ctx context.Context, orderID string) {
	const op = "services.notification.triggerCallback"

	response, err := s.gateway.ProcessCallback(ctx, orderID)
	if err != nil {
		s.log.Warn(op, slog.String("callback failed", err.Error()))
		return
	}

	s.log.Info(op, slog.String("callback response", response))
}
