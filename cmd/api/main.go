package main

import (
	"context"
	"os"

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

	api := &app.App{}
	if err := api.Initialize(context.Background(), cfg); err != nil {
		logrus.WithError(err).Error("error initializing api")
		os.Exit(1)
	}
	defer api.Shutdown()

	if err := api.Run(); err != nil {
		logrus.WithError(err).Error("api stopped")
		os.Exit(1)
	}
}
