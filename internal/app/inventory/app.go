package inventoryapp

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	httpapp "github.com/tumbleweedd/four_services_system/fulfillment/internal/app/http"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/clients"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/config"
	inventory_http "github.com/tumbleweedd/four_services_system/fulfillment/internal/delivery/http/inventory"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	inventoryService "github.com/tumbleweedd/four_services_system/fulfillment/internal/services/inventory"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/brokers/kafka/producer"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

const (
	reservationCacheSize = 256
	reservationCacheTTL  = 10 * time.Minute
)

type App struct {
	log logger.Logger

	HTTPServer *httpapp.App
	producer   *producer.Producer
}

func NewApp(ctx context.Context, log logger.Logger, cfg *config.Config) (*App, error) {
	gatewayClient := clients.NewGatewayClient(cfg.Endpoints.Gateway, cfg.Endpoints.ClientTimeout)

	var (
		notifier             inventoryService.Notifier
		notificationProducer *producer.Producer
	)

	// Either transport satisfies the consumer-side contract; the queue is
	// the default, the direct POST exists for broker-less setups.
	switch cfg.Inventory.NotifyTransport {
	case "http":
		notifier = httpNotifier{client: clients.NewNotificationClient(cfg.Endpoints.Notification, cfg.Endpoints.ClientTimeout)}
	default:
		var err error
		notificationProducer, err = producer.New(ctx, log, cfg.Kafka.BrokerList, cfg.Kafka.NotificationTopic)
		if err != nil {
			return nil, err
		}
		notifier = brokerNotifier{producer: notificationProducer}
	}

	reservations := expirable.NewLRU[string, int](reservationCacheSize, nil, reservationCacheTTL)

	inventorySvc := inventoryService.New(log, gatewayClient, notifier, reservations)

	handler := inventory_http.NewHandler(log, inventorySvc)

	return &App{
		log:        log,
		HTTPServer: httpapp.NewApp(log, handler.InitRoutes(), cfg.Inventory.Port),
		producer:   notificationProducer,
	}, nil
}

func (a *App) Stop() error {
	if a.producer == nil {
		return a.HTTPServer.Stop()
	}

	return errors.Join(a.HTTPServer.Stop(), a.producer.Close())
}

type brokerNotifier struct {
	producer *producer.Producer
}

func (n brokerNotifier) Send(ctx context.Context, notification models.NotificationRequest) error {
	return n.producer.Publish(ctx, notification)
}

type httpNotifier struct {
	client *clients.NotificationClient
}

func (n httpNotifier) Send(ctx context.Context, notification models.NotificationRequest) error {
	_, err := n.client.Notify(ctx, notification)
	return err
}
