package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jorgemunera/payment-notification-service/internal/handlers"
)

func (a *App) RegisterRoutes(paymentHandler *handlers.PaymentHandler, notificationHandler *handlers.NotificationHandler) {
	payments := a.Router.Group("/payments")
	payments.POST("", paymentHandler.CreatePayment)
	payments.GET("", paymentHandler.ListPayments)
	payments.GET("/:id", paymentHandler.GetPayment)

	notifications := a.Router.Group("/notifications")
	notifications.GET("", notificationHandler.GetAll)
	notifications.GET("/status", notificationHandler.GetStatus)
	notifications.POST("/simulate-failure", notificationHandler.SimulateFailure)
	notifications.POST("/simulate-recovery", notificationHandler.SimulateRecovery)
	notifications.GET("/dead-letter-queue", notificationHandler.GetDeadLetterQueue)
	notifications.POST("/dead-letter-queue/retry-all", notificationHandler.RetryAllMessages)
	notifications.POST("/dead-letter-queue/:messageId/retry", notificationHandler.RetryMessage)

	a.Router.GET("/health", a.healthCheck)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (a *App) healthCheck(c *gin.Context) {
	checks := gin.H{
		"postgres": "healthy",
		"redis":    "healthy",
		"rabbitmq": "healthy",
	}
	healthy := true

	if sqlDB, err := a.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		checks["postgres"] = "unhealthy"
		healthy = false
	}
	if err := a.store.HealthCheck(c.Request.Context()); err != nil {
		checks["redis"] = "unhealthy"
		healthy = false
	}
	if err := a.rabbit.HealthCheck(); err != nil {
		checks["rabbitmq"] = "unhealthy"
		healthy = false
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"healthy": healthy, "checks": checks})
}
