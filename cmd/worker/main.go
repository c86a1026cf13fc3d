package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Jorgemunera/payment-notification-service/config"
	"github.com/Jorgemunera/payment-notification-service/internal/app"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.New()
	if err != nil {
		logrus.WithError(err).Error("error reading configuration")
		os.Exit(1)
	}

	worker := &app.Worker{}
	if err := worker.Initialize(cfg); err != nil {
		logrus.WithError(err).Error("error initializing worker")
		os.Exit(1)
	}
	defer worker.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := worker.Run(ctx); err != nil {
		logrus.WithError(err).Error("worker stopped")
		os.Exit(1)
	}
}
