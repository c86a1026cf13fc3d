package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jorgemunera/payment-notification-service/internal/metrics"
	"github.com/Jorgemunera/payment-notification-service/internal/models"
	"github.com/Jorgemunera/payment-notification-service/internal/models/dto"
	"github.com/Jorgemunera/payment-notification-service/internal/service"
)

type NotificationService interface {
	GetNotifications(ctx context.Context, query dto.ListNotificationsQuery) (*dto.NotificationListResponse, error)
	CountByStatus(ctx context.Context) (map[models.NotificationStatus]int64, error)
}

type EmailControl interface {
	Enable()
	Disable()
	GetStatus() service.EmailStatus
}

type DeadLetterOps interface {
	List(ctx context.Context, maxMessages int) ([]models.DeadLetterMessage, error)
	RetryOne(ctx context.Context, messageID string) error
	RetryAll(ctx context.Context) (int, error)
}

type NotificationHandler struct {
	Service    NotificationService
	Email      EmailControl
	DeadLetter DeadLetterOps
}

func NewNotificationHandler(s NotificationService, email EmailControl, deadLetter DeadLetterOps) *NotificationHandler {
	return &NotificationHandler{Service: s, Email: email, DeadLetter: deadLetter}
}

// GET /notifications
func (h *NotificationHandler) GetAll(c *gin.Context) {
	var query dto.ListNotificationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, models.InvalidRequest("invalid query parameters"))
		return
	}

	result, err := h.Service.GetNotifications(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /notifications/status
func (h *NotificationHandler) GetStatus(c *gin.Context) {
	counts, err := h.Service.CountByStatus(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"service":       h.Email.GetStatus(),
		"notifications": counts,
	})
}

// POST /notifications/simulate-failure
func (h *NotificationHandler) SimulateFailure(c *gin.Context) {
	h.Email.Disable()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "notification service disabled",
		"status":  h.Email.GetStatus(),
	})
}

// POST /notifications/simulate-recovery
func (h *NotificationHandler) SimulateRecovery(c *gin.Context) {
	h.Email.Enable()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "notification service enabled",
		"status":  h.Email.GetStatus(),
	})
}

// GET /notifications/dead-letter-queue
func (h *NotificationHandler) GetDeadLetterQueue(c *gin.Context) {
	maxMessages := queryInt(c, "maxMessages", 100)

	messages, err := h.DeadLetter.List(c.Request.Context(), maxMessages)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeadLetterListResponse{
		Count:    len(messages),
		Messages: messages,
	})
}

// POST /notifications/dead-letter-queue/:messageId/retry
func (h *NotificationHandler) RetryMessage(c *gin.Context) {
	messageID := c.Param("messageId")

	if err := h.DeadLetter.RetryOne(c.Request.Context(), messageID); err != nil {
		respondError(c, err)
		return
	}

	metrics.DeadLetterRepublishedTotal.Inc()
	c.JSON(http.StatusOK, dto.RetryMessageResponse{
		Success:   true,
		MessageID: messageID,
		Message:   "message requeued for reprocessing",
	})
}

// POST /notifications/dead-letter-queue/retry-all
func (h *NotificationHandler) RetryAllMessages(c *gin.Context) {
	retried, err := h.DeadLetter.RetryAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.DeadLetterRepublishedTotal.Add(float64(retried))
	c.JSON(http.StatusOK, dto.RetryAllResponse{
		Success:      true,
		RetriedCount: retried,
		Message:      fmt.Sprintf("%d message(s) requeued for reprocessing", retried),
	})
}
