package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	gatewayapp "github.com/tumbleweedd/four_services_system/fulfillment/internal/app/gateway"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/config"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

func main() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := gatewayapp.NewApp(ctx, log, &cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to create gateway app: %v", err))
	}

	go application.HTTPServer.RunWithPanic()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	if err = application.Stop(); err != nil {
		panic(fmt.Sprintf("failed to stop gateway app: %v", err))
	}

	log.Info("gateway service stopped")
}
