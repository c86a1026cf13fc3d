package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jorgemunera/payment-notification-service/internal/handlers"
	"github.com/Jorgemunera/payment-notification-service/internal/handlers/mocks"
	"github.com/Jorgemunera/payment-notification-service/internal/models"
	"github.com/Jorgemunera/payment-notification-service/internal/models/dto"
	"github.com/Jorgemunera/payment-notification-service/internal/service"
)

type notificationDeps struct {
	service    *mocks.MockNotificationService
	email      *mocks.MockEmailControl
	deadLetter *mocks.MockDeadLetterOps
}

func notificationRouter(t *testing.T) (*gin.Engine, notificationDeps) {
	gin.SetMode(gin.TestMode)
	deps := notificationDeps{
		service:    mocks.NewMockNotificationService(t),
		email:      mocks.NewMockEmailControl(t),
		deadLetter: mocks.NewMockDeadLetterOps(t),
	}
	h := handlers.NewNotificationHandler(deps.service, deps.email, deps.deadLetter)

	router := gin.New()
	router.GET("/notifications", h.GetAll)
	router.GET("/notifications/status", h.GetStatus)
	router.POST("/notifications/simulate-failure", h.SimulateFailure)
	router.POST("/notifications/simulate-recovery", h.SimulateRecovery)
	router.GET("/notifications/dead-letter-queue", h.GetDeadLetterQueue)
	router.POST("/notifications/dead-letter-queue/retry-all", h.RetryAllMessages)
	router.POST("/notifications/dead-letter-queue/:messageId/retry", h.RetryMessage)
	return router, deps
}

func TestGetAllNotifications(t *testing.T) {
	t.Run("binds query filters", func(t *testing.T) {
		router, deps := notificationRouter(t)

		deps.service.EXPECT().
			GetNotifications(mock.Anything, dto.ListNotificationsQuery{Status: "SENT", PaymentID: "pay_1", Limit: 10, Offset: 5}).
			Return(&dto.NotificationListResponse{
				Notifications: []dto.NotificationResponse{{ID: "ntf_1", Status: "SENT"}},
				Pagination:    dto.Pagination{Total: 1, Limit: 10, Offset: 5},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/notifications?status=SENT&paymentId=pay_1&limit=10&offset=5", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "ntf_1")
	})

	t.Run("maps invalid status filter to 400", func(t *testing.T) {
		router, deps := notificationRouter(t)

		deps.service.EXPECT().
			GetNotifications(mock.Anything, mock.Anything).
			Return(nil, models.InvalidNotificationStatus("status not allowed: QUEUED"))

		req := httptest.NewRequest(http.MethodGet, "/notifications?status=QUEUED", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "INVALID_STATUS")
	})
}

func TestGetNotificationStatus(t *testing.T) {
	router, deps := notificationRouter(t)

	deps.service.EXPECT().CountByStatus(mock.Anything).Return(map[models.NotificationStatus]int64{
		models.NotificationSent:   12,
		models.NotificationFailed: 3,
	}, nil)
	deps.email.EXPECT().GetStatus().Return(service.EmailStatus{Service: "email", Enabled: true, Status: "operational"})

	req := httptest.NewRequest(http.MethodGet, "/notifications/status", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "operational")
	assert.Contains(t, recorder.Body.String(), `"SENT":12`)
}

func TestSimulateFailureAndRecovery(t *testing.T) {
	t.Run("failure disables the sender", func(t *testing.T) {
		router, deps := notificationRouter(t)

		deps.email.EXPECT().Disable().Return()
		deps.email.EXPECT().GetStatus().Return(service.EmailStatus{Service: "email", Enabled: false, Status: "unavailable"})

		req := httptest.NewRequest(http.MethodPost, "/notifications/simulate-failure", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "unavailable")
	})

	t.Run("recovery enables the sender", func(t *testing.T) {
		router, deps := notificationRouter(t)

		deps.email.EXPECT().Enable().Return()
		deps.email.EXPECT().GetStatus().Return(service.EmailStatus{Service: "email", Enabled: true, Status: "operational"})

		req := httptest.NewRequest(http.MethodPost, "/notifications/simulate-recovery", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "operational")
	})
}

func TestDeadLetterEndpoints(t *testing.T) {
	t.Run("lists the queue", func(t *testing.T) {
		router, deps := notificationRouter(t)

		deps.deadLetter.EXPECT().
			List(mock.Anything, 100).
			Return([]models.DeadLetterMessage{{MessageID: "evt_1", PaymentID: "pay_1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/notifications/dead-letter-queue", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"count":1`)
		assert.Contains(t, recorder.Body.String(), "evt_1")
	})

	t.Run("passes maxMessages through", func(t *testing.T) {
		router, deps := notificationRouter(t)

		deps.deadLetter.EXPECT().List(mock.Anything, 5).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/notifications/dead-letter-queue?maxMessages=5", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("retries a single message", func(t *testing.T) {
		router, deps := notificationRouter(t)

		deps.deadLetter.EXPECT().RetryOne(mock.Anything, "evt_1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/notifications/dead-letter-queue/evt_1/retry", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp dto.RetryMessageResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "evt_1", resp.MessageID)
	})

	t.Run("maps unknown message to 404", func(t *testing.T) {
		router, deps := notificationRouter(t)

		deps.deadLetter.EXPECT().
			RetryOne(mock.Anything, "evt_missing").
			Return(models.DeadLetterMessageNotFound("evt_missing"))

		req := httptest.NewRequest(http.MethodPost, "/notifications/dead-letter-queue/evt_missing/retry", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "DLQ_MESSAGE_NOT_FOUND")
	})

	t.Run("retries everything", func(t *testing.T) {
		router, deps := notificationRouter(t)

		deps.deadLetter.EXPECT().RetryAll(mock.Anything).Return(4, nil)

		req := httptest.NewRequest(http.MethodPost, "/notifications/dead-letter-queue/retry-all", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp dto.RetryAllResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 4, resp.RetriedCount)
	})
}
