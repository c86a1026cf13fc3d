package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Jorgemunera/payment-notification-service/config"
	"github.com/Jorgemunera/payment-notification-service/internal/metrics"
	"github.com/Jorgemunera/payment-notification-service/internal/rabbit"
	"github.com/Jorgemunera/payment-notification-service/internal/repository/posgrest"
	"github.com/Jorgemunera/payment-notification-service/internal/service"
	"github.com/Jorgemunera/payment-notification-service/internal/subscriber"
)

// Worker is the notification consumer process. It shares the stores with
// the API but owns its own broker connection so the prefetch window of the
// consumer channel is not disturbed by publishes.
type Worker struct {
	config   *config.Config
	db       *gorm.DB
	rabbit   *rabbit.Client
	consumer *subscriber.Consumer
}

func (w *Worker) Initialize(cfg *config.Config) error {
	w.config = cfg

	metrics.RegisterMetrics()

	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	w.db = db

	rabbitClient, err := rabbit.Connect(cfg.Rabbit.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	if err := rabbitClient.SetupTopology(); err != nil {
		return fmt.Errorf("failed to declare topology: %w", err)
	}
	w.rabbit = rabbitClient

	notificationRepo := posgrest.NewNotificationRepository(db)
	emailService := service.NewEmailService(cfg.Notifications.ServiceEnabled)
	notificationService := service.NewNotificationService(notificationRepo, emailService)
	w.consumer = subscriber.NewConsumer(notificationService, cfg.Notifications.MaxRetries)

	return nil
}

func (w *Worker) Run(ctx context.Context) error {
	deliveries, err := w.rabbit.Consume(rabbit.NotificationsQueue)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	go w.serveMetrics()

	logrus.WithField("queue", rabbit.NotificationsQueue).Info("worker started")
	w.consumer.Listen(ctx, deliveries)
	return nil
}

// serveMetrics exposes the consumer counters on a port of their own,
// since the worker has no other HTTP surface.
func (w *Worker) serveMetrics() {
	router := gin.New()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := ":" + w.config.APP.MetricsPort
	logrus.WithField("addr", addr).Info("metrics endpoint listening")
	if err := router.Run(addr); err != nil {
		logrus.WithError(err).Warn("metrics endpoint stopped")
	}
}

func (w *Worker) Shutdown() {
	if w.rabbit != nil {
		if err := w.rabbit.Close(); err != nil {
			logrus.WithError(err).Warn("error closing rabbitmq")
		}
	}
	if w.db != nil {
		if sqlDB, err := w.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
