package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type Producer struct {
	log logger.Logger

	topic string

	// доставка уведомлений не влияет на результат основного запроса,
	// поэтому использую sarama.AsyncProducer
	producer sarama.AsyncProducer
}

func New(
	ctx context.Context,
	log logger.Logger,
	brokerList []string,
	topic string,
) (*Producer, error) {
	producerConfig := sarama.NewConfig()
	producerConfig.Producer.RequiredAcks = sarama.WaitForLocal
	producerConfig.Producer.Compression = sarama.CompressionNone
	producerConfig.Producer.Return.Successes = true
	producerConfig.Producer.Return.Errors = true

	asyncProducer, err := sarama.NewAsyncProducer(brokerList, producerConfig)
	if err != nil {
		return nil, err
	}

	p := &Producer{
		log:      log,
		topic:    topic,
		producer: asyncProducer,
	}

	go p.drain(ctx)

	return p, nil
}

// drain keeps publish failures out of the request path: they are logged here
// and nowhere else.
func (p *Producer) drain(ctx context.Context) {
	for {
		select {
		case sendErr, ok := <-p.producer.Errors():
			if !ok {
				return
			}

			p.log.Warn("failed to send notification", slog.String("error", sendErr.Error()))
		case success, ok := <-p.producer.Successes():
			if !ok {
				return
			}

			p.log.Debug("notification sent", slog.String("topic", success.Topic))
		case <-ctx.Done():
			return
		}
	}
}

// Publish enqueues a notification keyed by its order id. Broker-side failures
// surface asynchronously in drain, never here.
func (p *Producer) Publish(ctx context.Context, notification models.NotificationRequest) error {
	const op = "brokers.kafka.producer.Publish"

	bytes, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("%s: marshal notification: %w", op, err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(notification.OrderID),
		Value: sarama.ByteEncoder(bytes),
	}

	select {
	case p.producer.Input() <- message:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
