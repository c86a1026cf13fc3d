package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jorgemunera/payment-notification-service/internal/models"
	"github.com/Jorgemunera/payment-notification-service/internal/models/dto"
	"github.com/Jorgemunera/payment-notification-service/internal/service"
	"github.com/Jorgemunera/payment-notification-service/internal/service/mocks"
)

func createRequest() *dto.CreatePaymentRequest {
	return &dto.CreatePaymentRequest{
		Amount:         decimal.NewFromFloat(150000.50),
		Currency:       "COP",
		AccountID:      "acc_001",
		Email:          "cliente@example.com",
		Description:    "Pago de servicios",
		IdempotencyKey: "idem-key-123",
	}
}

// inProcessStore implements the coordination contract with real in-process
// primitives, so concurrent admissions contend for an actual lock and see
// each other's cached results.
type inProcessStore struct {
	mu      sync.Mutex
	locks   map[string]*sync.Mutex
	results map[string][]byte
}

func newInProcessStore() *inProcessStore {
	return &inProcessStore{
		locks:   make(map[string]*sync.Mutex),
		results: make(map[string][]byte),
	}
}

func (s *inProcessStore) WithLock(ctx context.Context, name string, _, _ time.Duration, fn func(context.Context) error) error {
	s.mu.Lock()
	lock, ok := s.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[name] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn(ctx)
}

func (s *inProcessStore) GetResult(ctx context.Context, key string, dest any) (bool, error) {
	s.mu.Lock()
	data, ok := s.results[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (s *inProcessStore) SetResult(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.results[key] = data
	s.mu.Unlock()
	return nil
}

// passthroughLock makes the store run the critical section directly.
func passthroughLock(store *mocks.MockIdempotencyStore, name string) {
	store.EXPECT().
		WithLock(mock.Anything, name, 10*time.Second, 5*time.Second, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _, _ time.Duration, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestCreatePayment(t *testing.T) {
	t.Run("creates payment, notification and event", func(t *testing.T) {
		payments := mocks.NewMockPaymentRepo(t)
		notifications := mocks.NewMockNotificationRepo(t)
		publisher := mocks.NewMockPublisher(t)
		store := mocks.NewMockIdempotencyStore(t)
		svc := service.NewPaymentService(payments, notifications, publisher, store)

		passthroughLock(store, "payment:idem-key-123")
		store.EXPECT().GetResult(mock.Anything, "idem-key-123", mock.Anything).Return(false, nil)
		payments.EXPECT().FindByIdempotencyKey(mock.Anything, "idem-key-123").Return(nil, nil)

		var savedPayment *models.Payment
		payments.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
				return p.IdempotencyKey == "idem-key-123" && p.Status == models.StatusSuccess
			})).
			Run(func(_ context.Context, p *models.Payment) { savedPayment = p }).
			Return(nil)

		notifications.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
				return n.Status == models.NotificationPending && n.Recipient == "cliente@example.com"
			})).
			Return(nil)

		publisher.EXPECT().
			Publish(mock.Anything, models.PaymentSucceededEventType, mock.MatchedBy(func(e models.DeliveryEvent) bool {
				return e.Type == models.PaymentSucceededEventType &&
					e.Payload.Email == "cliente@example.com" &&
					e.Payload.Amount.Equal(decimal.NewFromFloat(150000.50))
			})).
			Return(nil)

		store.EXPECT().SetResult(mock.Anything, "idem-key-123", mock.Anything).Return(nil)

		result, err := svc.CreatePayment(context.Background(), createRequest())

		require.NoError(t, err)
		require.NotNil(t, savedPayment)
		assert.Equal(t, savedPayment.ID, result.ID)
		assert.Equal(t, "SUCCESS", result.Status)
		assert.Equal(t, "COP", result.Currency)
	})

	t.Run("replays cached result without side effects", func(t *testing.T) {
		payments := mocks.NewMockPaymentRepo(t)
		notifications := mocks.NewMockNotificationRepo(t)
		publisher := mocks.NewMockPublisher(t)
		store := mocks.NewMockIdempotencyStore(t)
		svc := service.NewPaymentService(payments, notifications, publisher, store)

		cached := dto.PaymentResponse{
			ID:       "pay_cached000001",
			Amount:   decimal.NewFromFloat(150000.50),
			Currency: "COP",
			Status:   "SUCCESS",
		}

		passthroughLock(store, "payment:idem-key-123")
		store.EXPECT().
			GetResult(mock.Anything, "idem-key-123", mock.Anything).
			Run(func(_ context.Context, _ string, dest any) {
				*(dest.(*dto.PaymentResponse)) = cached
			}).
			Return(true, nil)

		result, err := svc.CreatePayment(context.Background(), createRequest())

		require.NoError(t, err)
		assert.Equal(t, "pay_cached000001", result.ID)
		payments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent duplicates admit exactly once", func(t *testing.T) {
		payments := mocks.NewMockPaymentRepo(t)
		notifications := mocks.NewMockNotificationRepo(t)
		publisher := mocks.NewMockPublisher(t)
		svc := service.NewPaymentService(payments, notifications, publisher, newInProcessStore())

		// The winner runs the full admission; the loser must be absorbed
		// by the cached result, so every side effect is expected once.
		payments.EXPECT().FindByIdempotencyKey(mock.Anything, "idem-key-123").Return(nil, nil).Once()
		payments.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		notifications.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		publisher.EXPECT().Publish(mock.Anything, models.PaymentSucceededEventType, mock.Anything).Return(nil).Once()

		results := make([]*dto.PaymentResponse, 2)
		errs := make([]error, 2)
		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = svc.CreatePayment(context.Background(), createRequest())
			}(i)
		}
		wg.Wait()

		require.NoError(t, errs[0])
		require.NoError(t, errs[1])
		require.NotNil(t, results[0])
		require.NotNil(t, results[1])
		assert.Equal(t, results[0].ID, results[1].ID, "both callers observe the same admitted payment")
		payments.AssertNumberOfCalls(t, "Save", 1)
		notifications.AssertNumberOfCalls(t, "Save", 1)
		publisher.AssertNumberOfCalls(t, "Publish", 1)
	})

	t.Run("repopulates the cache from a persisted payment", func(t *testing.T) {
		payments := mocks.NewMockPaymentRepo(t)
		notifications := mocks.NewMockNotificationRepo(t)
		publisher := mocks.NewMockPublisher(t)
		store := mocks.NewMockIdempotencyStore(t)
		svc := service.NewPaymentService(payments, notifications, publisher, store)

		existing := &models.Payment{
			ID:             "pay_persisted001",
			Amount:         decimal.NewFromFloat(150000.50),
			Currency:       models.CurrencyCOP,
			AccountID:      "acc_001",
			Email:          "cliente@example.com",
			Status:         models.StatusSuccess,
			IdempotencyKey: "idem-key-123",
		}

		passthroughLock(store, "payment:idem-key-123")
		store.EXPECT().GetResult(mock.Anything, "idem-key-123", mock.Anything).Return(false, nil)
		payments.EXPECT().FindByIdempotencyKey(mock.Anything, "idem-key-123").Return(existing, nil)
		store.EXPECT().SetResult(mock.Anything, "idem-key-123", mock.Anything).Return(nil)

		result, err := svc.CreatePayment(context.Background(), createRequest())

		require.NoError(t, err)
		assert.Equal(t, "pay_persisted001", result.ID)
		payments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("validation rejects before any coordination", func(t *testing.T) {
		payments := mocks.NewMockPaymentRepo(t)
		notifications := mocks.NewMockNotificationRepo(t)
		publisher := mocks.NewMockPublisher(t)
		store := mocks.NewMockIdempotencyStore(t)
		svc := service.NewPaymentService(payments, notifications, publisher, store)

		req := createRequest()
		req.Amount = decimal.NewFromInt(-10)

		result, err := svc.CreatePayment(context.Background(), req)

		require.Error(t, err)
		assert.Nil(t, result)
		de, ok := models.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, "INVALID_AMOUNT", de.Code)
		store.AssertNotCalled(t, "WithLock", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("propagates lock timeout", func(t *testing.T) {
		payments := mocks.NewMockPaymentRepo(t)
		notifications := mocks.NewMockNotificationRepo(t)
		publisher := mocks.NewMockPublisher(t)
		store := mocks.NewMockIdempotencyStore(t)
		svc := service.NewPaymentService(payments, notifications, publisher, store)

		store.EXPECT().
			WithLock(mock.Anything, "payment:idem-key-123", 10*time.Second, 5*time.Second, mock.Anything).
			Return(models.LockAcquisitionTimeout("payment:idem-key-123"))

		result, err := svc.CreatePayment(context.Background(), createRequest())

		require.Error(t, err)
		assert.Nil(t, result)
		de, ok := models.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, "LOCK_ACQUISITION_TIMEOUT", de.Code)
	})

	t.Run("publish failure aborts the admission", func(t *testing.T) {
		payments := mocks.NewMockPaymentRepo(t)
		notifications := mocks.NewMockNotificationRepo(t)
		publisher := mocks.NewMockPublisher(t)
		store := mocks.NewMockIdempotencyStore(t)
		svc := service.NewPaymentService(payments, notifications, publisher, store)

		passthroughLock(store, "payment:idem-key-123")
		store.EXPECT().GetResult(mock.Anything, "idem-key-123", mock.Anything).Return(false, nil)
		payments.EXPECT().FindByIdempotencyKey(mock.Anything, "idem-key-123").Return(nil, nil)
		payments.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
		notifications.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
		publisher.EXPECT().
			Publish(mock.Anything, models.PaymentSucceededEventType, mock.Anything).
			Return(errors.New("broker unavailable"))

		result, err := svc.CreatePayment(context.Background(), createRequest())

		require.Error(t, err)
		assert.Nil(t, result)
		store.AssertNotCalled(t, "SetResult", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetPayment(t *testing.T) {
	t.Run("returns payment with its notification", func(t *testing.T) {
		payments := mocks.NewMockPaymentRepo(t)
		notifications := mocks.NewMockNotificationRepo(t)
		svc := service.NewPaymentService(payments, notifications, mocks.NewMockPublisher(t), mocks.NewMockIdempotencyStore(t))

		payment := &models.Payment{ID: "pay_abc", Amount: decimal.NewFromInt(100), Currency: models.CurrencyUSD, Status: models.StatusSuccess}
		notification := &models.Notification{ID: "ntf_abc", PaymentID: "pay_abc", Status: models.NotificationSent}

		payments.EXPECT().FindByID(mock.Anything, "pay_abc").Return(payment, nil)
		notifications.EXPECT().FindByPaymentID(mock.Anything, "pay_abc").Return(notification, nil)

		detail, err := svc.GetPayment(context.Background(), "pay_abc")

		require.NoError(t, err)
		assert.Equal(t, "pay_abc", detail.ID)
		require.NotNil(t, detail.Notification)
		assert.Equal(t, "ntf_abc", detail.Notification.ID)
		assert.Equal(t, "SENT", detail.Notification.Status)
	})

	t.Run("unknown payment", func(t *testing.T) {
		payments := mocks.NewMockPaymentRepo(t)
		svc := service.NewPaymentService(payments, mocks.NewMockNotificationRepo(t), mocks.NewMockPublisher(t), mocks.NewMockIdempotencyStore(t))

		payments.EXPECT().FindByID(mock.Anything, "pay_nope").Return(nil, nil)

		detail, err := svc.GetPayment(context.Background(), "pay_nope")

		require.Error(t, err)
		assert.Nil(t, detail)
		de, ok := models.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, "PAYMENT_NOT_FOUND", de.Code)
	})
}

func TestGetPaymentsByAccount(t *testing.T) {
	payments := mocks.NewMockPaymentRepo(t)
	svc := service.NewPaymentService(payments, mocks.NewMockNotificationRepo(t), mocks.NewMockPublisher(t), mocks.NewMockIdempotencyStore(t))

	rows := []models.Payment{
		{ID: "pay_2", Amount: decimal.NewFromInt(200), Currency: models.CurrencyCOP, Status: models.StatusSuccess},
		{ID: "pay_1", Amount: decimal.NewFromInt(100), Currency: models.CurrencyCOP, Status: models.StatusSuccess},
	}
	payments.EXPECT().FindByAccountID(mock.Anything, "acc_001", 10, 0).Return(rows, nil)

	result, err := svc.GetPaymentsByAccount(context.Background(), "acc_001", 10, 0)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "pay_2", result[0].ID)
	assert.Equal(t, "pay_1", result[1].ID)
}
