package notificationapp

import (
	"context"
	"errors"
	"fmt"

	httpapp "github.com/tumbleweedd/four_services_system/fulfillment/internal/app/http"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/clients"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/config"
	notification_http "github.com/tumbleweedd/four_services_system/fulfillment/internal/delivery/http/notification"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/repository/audit"
	notificationService "github.com/tumbleweedd/four_services_system/fulfillment/internal/services/notification"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/brokers/kafka/consumer"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/databases/postgres"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type App struct {
	log logger.Logger

	HTTPServer *httpapp.App
	Consumer   *consumer.Consumer

	db *postgres.PgDB
}

func NewApp(ctx context.Context, log logger.Logger, cfg *config.Config) (*App, error) {
	gatewayClient := clients.NewGatewayClient(cfg.Endpoints.Gateway, cfg.Endpoints.ClientTimeout)

	var (
		db       *postgres.PgDB
		auditDst notificationService.AuditStore
	)

	// The audit trail is optional; without postgres the pipeline runs with a
	// noop store.
	if cfg.Postgres.Host == "" {
		auditDst = audit.Noop{}
	} else {
		var err error
		db, err = postgres.NewPostgresDB(ctx, log, postgresDSN(&cfg.Postgres))
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		auditDst = audit.New(log, db.GetDB())
	}

	notificationSvc := notificationService.New(log, gatewayClient, auditDst)

	queueConsumer, err := consumer.New(
		log,
		cfg.Kafka.BrokerList,
		cfg.Kafka.ConsumerGroup,
		cfg.Kafka.NotificationTopic,
		notificationSvc,
	)
	if err != nil {
		return nil, fmt.Errorf("create consumer: %w", err)
	}

	handler := notification_http.NewHandler(log, notificationSvc)

	return &App{
		log:        log,
		HTTPServer: httpapp.NewApp(log, handler.InitRoutes(), cfg.Notification.Port),
		Consumer:   queueConsumer,
		db:         db,
	}, nil
}

func (a *App) Stop() error {
	err := errors.Join(a.HTTPServer.Stop(), a.Consumer.Close())

	if a.db != nil {
		err = errors.Join(err, a.db.Close())
	}

	return err
}

func postgresDSN(psqlCfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		psqlCfg.Host, psqlCfg.Port, psqlCfg.User, psqlCfg.DbName, psqlCfg.Pwd, psqlCfg.SslMode)
}
