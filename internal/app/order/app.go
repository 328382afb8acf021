package orderapp

import (
	"context"
	"errors"

	httpapp "github.com/tumbleweedd/four_services_system/fulfillment/internal/app/http"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/clients"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/config"
	order_http "github.com/tumbleweedd/four_services_system/fulfillment/internal/delivery/http/order"
	orderService "github.com/tumbleweedd/four_services_system/fulfillment/internal/services/order"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/brokers/kafka/producer"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type App struct {
	log logger.Logger

	HTTPServer *httpapp.App
	producer   *producer.Producer
}

func NewApp(ctx context.Context, log logger.Logger, cfg *config.Config) (*App, error) {
	notificationProducer, err := producer.New(ctx, log, cfg.Kafka.BrokerList, cfg.Kafka.NotificationTopic)
	if err != nil {
		return nil, err
	}

	inventoryClient := clients.NewInventoryClient(cfg.Endpoints.Inventory, cfg.Endpoints.ClientTimeout)
	gatewayClient := clients.NewGatewayClient(cfg.Endpoints.Gateway, cfg.Endpoints.ClientTimeout)

	orderSvc := orderService.New(log, inventoryClient, gatewayClient, notificationProducer)

	handler := order_http.NewHandler(log, orderSvc)

	return &App{
		log:        log,
		HTTPServer: httpapp.NewApp(log, handler.InitRoutes(), cfg.Order.Port),
		producer:   notificationProducer,
	}, nil
}

func (a *App) Stop() error {
	return errors.Join(a.HTTPServer.Stop(), a.producer.Close())
}
