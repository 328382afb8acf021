package gatewayapp

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	httpapp "github.com/tumbleweedd/four_services_system/fulfillment/internal/app/http"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/clients"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/config"
	gateway_http "github.com/tumbleweedd/four_services_system/fulfillment/internal/delivery/http/gateway"
	gatewayService "github.com/tumbleweedd/four_services_system/fulfillment/internal/services/gateway"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/brokers/kafka/producer"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

const (
	callbackCacheSize = 1024
	callbackCacheTTL  = 10 * time.Minute
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

	orderClient := clients.NewOrderClient(cfg.Endpoints.Order, cfg.Endpoints.ClientTimeout)
	inventoryClient := clients.NewInventoryClient(cfg.Endpoints.Inventory, cfg.Endpoints.ClientTimeout)

	processedCallbacks := expirable.NewLRU[string, time.Time](callbackCacheSize, nil, callbackCacheTTL)

	gatewaySvc := gatewayService.New(log, orderClient, inventoryClient, notificationProducer, processedCallbacks)

	handler := gateway_http.NewHandler(log, gatewaySvc)

	return &App{
		log:        log,
		HTTPServer: httpapp.NewApp(log, handler.InitRoutes(), cfg.Gateway.Port),
		producer:   notificationProducer,
	}, nil
}

func (a *App) Stop() error {
	return errors.Join(a.HTTPServer.Stop(), a.producer.Close())
}
