package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	orderapp "github.com/tumbleweedd/four_services_system/fulfillment/internal/app/order"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/config"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

func main() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := orderapp.NewApp(ctx, log, &cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to create order app: %v", err))
	}

	go application.HTTPServer.RunWithPanic()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	if err = application.Stop(); err != nil {
		panic(fmt.Sprintf("failed to stop order app: %v", err))
	}

	log.Info("order service stopped")
}
