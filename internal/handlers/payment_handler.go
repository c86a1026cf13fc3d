package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Jorgemunera/payment-notification-service/internal/models"
	"github.com/Jorgemunera/payment-notification-service/internal/models/dto"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (*dto.PaymentDetailResponse, error)
	GetPaymentsByAccount(ctx context.Context, accountID string, limit, offset int) ([]dto.PaymentResponse, error)
}

type PaymentHandler struct {
	Service PaymentService
}

func NewPaymentHandler(s PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// POST /payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	idempotencyKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	if idempotencyKey == "" {
		respondError(c, models.IdempotencyKeyRequired())
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.InvalidRequest("invalid request body"))
		return
	}
	req.IdempotencyKey = idempotencyKey

	payment, err := h.Service.CreatePayment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GET /payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.Service.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// GET /payments?accountId=acc_123
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	accountID := strings.TrimSpace(c.Query("accountId"))
	if accountID == "" {
		respondError(c, models.InvalidAccount("accountId query parameter is required"))
		return
	}

	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	payments, err := h.Service.GetPaymentsByAccount(c.Request.Context(), accountID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

// respondError maps domain errors to their HTTP status and wraps everything
// else as a 500, always with the {success, error:{code, message}} envelope.
func respondError(c *gin.Context, err error) {
	if de, ok := models.AsDomainError(err); ok {
		c.JSON(de.Status, gin.H{"success": false, "error": de})
		return
	}

	logrus.WithError(err).Error("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   gin.H{"code": "INTERNAL_ERROR", "message": "unexpected internal error"},
	})
}
