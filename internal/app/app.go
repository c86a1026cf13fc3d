package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Jorgemunera/payment-notification-service/config"
	"github.com/Jorgemunera/payment-notification-service/internal/cache"
	"github.com/Jorgemunera/payment-notification-service/internal/handlers"
	"github.com/Jorgemunera/payment-notification-service/internal/metrics"
	"github.com/Jorgemunera/payment-notification-service/internal/models"
	"github.com/Jorgemunera/payment-notification-service/internal/publisher"
	"github.com/Jorgemunera/payment-notification-service/internal/rabbit"
	"github.com/Jorgemunera/payment-notification-service/internal/repository/posgrest"
	"github.com/Jorgemunera/payment-notification-service/internal/service"
)

// App is the HTTP API process: payment admission, queries and the operator
// endpoints for notifications and the dead letter queue.
type App struct {
	config *config.Config
	Router *gin.Engine

	db     *gorm.DB
	rabbit *rabbit.Client
	store  *cache.IdempotencyStore
}

func (a *App) Initialize(ctx context.Context, cfg *config.Config) error {
	a.config = cfg

	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = db

	if err := db.AutoMigrate(&models.Payment{}, &models.Notification{}); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	rdb, err := cfg.Redis.NewRedisClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	a.store = cache.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL())

	rabbitClient, err := rabbit.Connect(cfg.Rabbit.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	if err := rabbitClient.SetupTopology(); err != nil {
		return fmt.Errorf("failed to declare topology: %w", err)
	}
	a.rabbit = rabbitClient

	metrics.RegisterMetrics()

	paymentRepo := posgrest.NewPaymentRepository(db)
	notificationRepo := posgrest.NewNotificationRepository(db)
	eventPublisher := publisher.NewRabbitPublisher(rabbitClient.Channel())
	emailService := service.NewEmailService(cfg.Notifications.ServiceEnabled)
	deadLetterManager := rabbit.NewDeadLetterManager(rabbitClient.Channel())

	paymentService := service.NewPaymentService(paymentRepo, notificationRepo, eventPublisher, a.store)
	notificationService := service.NewNotificationService(notificationRepo, emailService)

	paymentHandler := handlers.NewPaymentHandler(paymentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService, emailService, deadLetterManager)

	a.Router = gin.New()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler, notificationHandler)

	return nil
}

func (a *App) Run() error {
	logrus.WithField("port", a.config.APP.PORT).Info("api listening")
	return a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
}

func (a *App) Shutdown() {
	if a.rabbit != nil {
		if err := a.rabbit.Close(); err != nil {
			logrus.WithError(err).Warn("error closing rabbitmq")
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
