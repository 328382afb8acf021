package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	notificationapp "github.com/tumbleweedd/four_services_system/fulfillment/internal/app/notification"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/config"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

func main() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := notificationapp.NewApp(ctx, log, &cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to create notification app: %v", err))
	}

	go application.HTTPServer.RunWithPanic()

	go func() {
		if runErr := application.Consumer.Run(ctx); runErr != nil && runErr != context.Canceled {
			log.Error("consumer stopped", slog.String("error", runErr.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	cancel()

	if err = application.Stop(); err != nil {
		panic(fmt.Sprintf("failed to stop notification app: %v", err))
	}

	log.Info("notification service stopped")
}
