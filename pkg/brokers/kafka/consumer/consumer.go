package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/IBM/sarama"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

// Handler runs the notification pipeline for one message.
type Handler interface {
	ProcessNotification(ctx context.Context, notification models.NotificationRequest) error
}

// Consumer drains the notification topic as a single logical consumer group.
// Delivery is at-least-once: a message is marked only after the pipeline
// returns, and redelivered duplicates are safe because callback targets are
// idempotent.
type Consumer struct {
	log logger.Logger

	topic   string
	group   sarama.ConsumerGroup
	handler Handler
}

func New(
	log logger.Logger,
	brokerList []string,
	groupID string,
	topic string,
	handler Handler,
) (*Consumer, error) {
	consumerConfig := sarama.NewConfig()
	consumerConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	consumerConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokerList, groupID, consumerConfig)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		log:     log,
		topic:   topic,
		group:   group,
		handler: handler,
	}, nil
}

func (c *Consumer) Run(ctx context.Context) error {
	const op = "brokers.kafka.consumer.Run"

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, &groupHandler{log: c.log, handler: c.handler}); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}

			c.log.Error(op, slog.String("error", err.Error()))
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

type groupHandler struct {
	log     logger.Logger
	handler Handler
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	const op = "brokers.kafka.consumer.ConsumeClaim"

	for message := range claim.Messages() {
		var notification models.NotificationRequest
		if err := json.Unmarshal(message.Value, &notification); err != nil {
			h.log.Warn(op, slog.String("malformed notification", err.Error()))
			session.MarkMessage(message, "")
			continue
		}

		// The pipeline owns its failures; a message is consumed whether it
		// succeeded or not, so a poisoned one cannot wedge the queue.
		if err := h.handler.ProcessNotification(session.Context(), notification); err != nil {
			h.log.Warn(op, slog.String("notification pipeline failed", err.Error()))
		}

		session.MarkMessage(message, "")
	}

	return nil
}
