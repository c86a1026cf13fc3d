package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jorgemunera/payment-notification-service/internal/handlers"
	"github.com/Jorgemunera/payment-notification-service/internal/handlers/mocks"
	"github.com/Jorgemunera/payment-notification-service/internal/models"
	"github.com/Jorgemunera/payment-notification-service/internal/models/dto"
)

func paymentRouter(h *handlers.PaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/payments", h.CreatePayment)
	router.GET("/payments", h.ListPayments)
	router.GET("/payments/:id", h.GetPayment)
	return router
}

func TestCreatePaymentHandler(t *testing.T) {
	body := `{"amount":150000.50,"currency":"COP","accountId":"acc_001","email":"cliente@example.com"}`

	t.Run("creates a payment", func(t *testing.T) {
		svc := mocks.NewMockPaymentService(t)
		router := paymentRouter(handlers.NewPaymentHandler(svc))

		svc.EXPECT().
			CreatePayment(mock.Anything, mock.MatchedBy(func(req *dto.CreatePaymentRequest) bool {
				return req.IdempotencyKey == "idem-key-123" && req.AccountID == "acc_001"
			})).
			Return(&dto.PaymentResponse{ID: "pay_abc123def456", Amount: decimal.NewFromFloat(150000.50), Currency: "COP", Status: "SUCCESS"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "idem-key-123")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp dto.PaymentResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "pay_abc123def456", resp.ID)
		assert.Equal(t, "SUCCESS", resp.Status)
	})

	t.Run("rejects requests without idempotency key", func(t *testing.T) {
		svc := mocks.NewMockPaymentService(t)
		router := paymentRouter(handlers.NewPaymentHandler(svc))

		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "IDEMPOTENCY_KEY_REQUIRED")
		svc.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		svc := mocks.NewMockPaymentService(t)
		router := paymentRouter(handlers.NewPaymentHandler(svc))

		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "idem-key-123")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "INVALID_REQUEST")
	})

	t.Run("maps lock timeout to 409", func(t *testing.T) {
		svc := mocks.NewMockPaymentService(t)
		router := paymentRouter(handlers.NewPaymentHandler(svc))

		svc.EXPECT().
			CreatePayment(mock.Anything, mock.Anything).
			Return(nil, models.LockAcquisitionTimeout("payment:idem-key-123"))

		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "idem-key-123")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "LOCK_ACQUISITION_TIMEOUT")
	})
}

func TestGetPaymentHandler(t *testing.T) {
	t.Run("returns the payment detail", func(t *testing.T) {
		svc := mocks.NewMockPaymentService(t)
		router := paymentRouter(handlers.NewPaymentHandler(svc))

		detail := &dto.PaymentDetailResponse{
			PaymentResponse: dto.PaymentResponse{ID: "pay_abc123def456", Status: "SUCCESS"},
			Notification:    &dto.NotificationResponse{ID: "ntf_abc123def456", Status: "SENT"},
		}
		svc.EXPECT().GetPayment(mock.Anything, "pay_abc123def456").Return(detail, nil)

		req := httptest.NewRequest(http.MethodGet, "/payments/pay_abc123def456", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "ntf_abc123def456")
	})

	t.Run("maps unknown payment to 404", func(t *testing.T) {
		svc := mocks.NewMockPaymentService(t)
		router := paymentRouter(handlers.NewPaymentHandler(svc))

		svc.EXPECT().GetPayment(mock.Anything, "pay_nope").Return(nil, models.PaymentNotFound("pay_nope"))

		req := httptest.NewRequest(http.MethodGet, "/payments/pay_nope", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "PAYMENT_NOT_FOUND")
	})
}

func TestListPaymentsHandler(t *testing.T) {
	t.Run("requires accountId", func(t *testing.T) {
		svc := mocks.NewMockPaymentService(t)
		router := paymentRouter(handlers.NewPaymentHandler(svc))

		req := httptest.NewRequest(http.MethodGet, "/payments", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "INVALID_ACCOUNT")
	})

	t.Run("passes pagination through", func(t *testing.T) {
		svc := mocks.NewMockPaymentService(t)
		router := paymentRouter(handlers.NewPaymentHandler(svc))

		svc.EXPECT().
			GetPaymentsByAccount(mock.Anything, "acc_001", 10, 20).
			Return([]dto.PaymentResponse{{ID: "pay_1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/payments?accountId=acc_001&limit=10&offset=20", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "pay_1")
	})

	t.Run("falls back to defaults on bad pagination values", func(t *testing.T) {
		svc := mocks.NewMockPaymentService(t)
		router := paymentRouter(handlers.NewPaymentHandler(svc))

		svc.EXPECT().
			GetPaymentsByAccount(mock.Anything, "acc_001", 50, 0).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/payments?accountId=acc_001&limit=abc&offset=-5", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
