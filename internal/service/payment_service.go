package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Jorgemunera/payment-notification-service/internal/metrics"
	"github.com/Jorgemunera/payment-notification-service/internal/models"
	"github.com/Jorgemunera/payment-notification-service/internal/models/dto"
	"github.com/Jorgemunera/payment-notification-service/internal/repository/posgrest"
)

const (
	paymentLockPrefix  = "payment:"
	paymentLockTTL     = 10 * time.Second
	paymentLockMaxWait = 5 * time.Second
)

// PaymentRepo defines the interface for payment persistence.
type PaymentRepo interface {
	Save(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*models.Payment, error)
	FindByAccountID(ctx context.Context, accountID string, limit, offset int) ([]models.Payment, error)
}

// NotificationRepo defines the interface for notification persistence.
type NotificationRepo interface {
	Save(ctx context.Context, notification *models.Notification) error
	FindByID(ctx context.Context, id string) (*models.Notification, error)
	FindByPaymentID(ctx context.Context, paymentID string) (*models.Notification, error)
	Update(ctx context.Context, notification *models.Notification) error
	FindAll(ctx context.Context, filters posgrest.NotificationFilters, limit, offset int) ([]models.Notification, int64, error)
	CountByStatus(ctx context.Context) (map[models.NotificationStatus]int64, error)
}

// Publisher defines the interface for publishing delivery events.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event models.DeliveryEvent) error
}

// IdempotencyStore defines the coordination primitives the admission path
// relies on: a named TTL lock and a result cache keyed by idempotency key.
type IdempotencyStore interface {
	WithLock(ctx context.Context, name string, ttl, maxWait time.Duration, fn func(ctx context.Context) error) error
	GetResult(ctx context.Context, key string, dest any) (bool, error)
	SetResult(ctx context.Context, key string, value any) error
}

// PaymentService implements the idempotent payment admission path: each
// idempotency key leads to at most one persisted payment/notification pair
// and one published delivery event, no matter how often or how
// concurrently the request is submitted.
type PaymentService struct {
	Payments      PaymentRepo
	Notifications NotificationRepo
	Publisher     Publisher
	Idempotency   IdempotencyStore

	log *logrus.Entry
}

func NewPaymentService(payments PaymentRepo, notifications NotificationRepo, pub Publisher, idempotency IdempotencyStore) *PaymentService {
	return &PaymentService{
		Payments:      payments,
		Notifications: notifications,
		Publisher:     pub,
		Idempotency:   idempotency,
		log:           logrus.WithField("component", "payment-service"),
	}
}

// CreatePayment admits a payment request. Validation failures return before
// any I/O. The critical section runs under a distributed lock per
// idempotency key: the lock serializes racing duplicates, the result cache
// short-circuits later ones.
func (s *PaymentService) CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	req.Sanitize()
	payment := req.ToEntity()
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	var result dto.PaymentResponse
	lockName := paymentLockPrefix + payment.IdempotencyKey

	err := s.Idempotency.WithLock(ctx, lockName, paymentLockTTL, paymentLockMaxWait, func(ctx context.Context) error {
		found, err := s.Idempotency.GetResult(ctx, payment.IdempotencyKey, &result)
		if err != nil {
			return err
		}
		if found {
			s.log.WithFields(logrus.Fields{
				"idempotencyKey": payment.IdempotencyKey,
				"paymentId":      result.ID,
			}).Info("payment already processed, returning cached result")
			metrics.PaymentsTotal.WithLabelValues("replayed").Inc()
			return nil
		}

		// The cache may have expired while the payment row is still there;
		// the unique index on idempotency_key is the durable source of truth.
		existing, err := s.Payments.FindByIdempotencyKey(ctx, payment.IdempotencyKey)
		if err != nil {
			return err
		}
		if existing != nil {
			result = dto.NewPaymentResponse(existing)
			if err := s.Idempotency.SetResult(ctx, payment.IdempotencyKey, result); err != nil {
				return err
			}
			s.log.WithFields(logrus.Fields{
				"idempotencyKey": payment.IdempotencyKey,
				"paymentId":      existing.ID,
			}).Info("payment already persisted, cache repopulated")
			metrics.PaymentsTotal.WithLabelValues("replayed").Inc()
			return nil
		}

		notification := models.NewNotification(payment)
		if err := notification.Validate(); err != nil {
			return err
		}

		if err := s.Payments.Save(ctx, payment); err != nil {
			return err
		}
		if err := s.Notifications.Save(ctx, notification); err != nil {
			return err
		}

		event := models.NewDeliveryEvent(payment, notification)
		if err := s.Publisher.Publish(ctx, models.PaymentSucceededEventType, event); err != nil {
			return err
		}

		result = dto.NewPaymentResponse(payment)
		if err := s.Idempotency.SetResult(ctx, payment.IdempotencyKey, result); err != nil {
			return err
		}

		s.log.WithFields(logrus.Fields{
			"paymentId":      payment.ID,
			"notificationId": notification.ID,
			"amount":         payment.Amount.String(),
			"currency":       payment.Currency,
		}).Info("payment created")

		metrics.PaymentsTotal.WithLabelValues("created").Inc()
		metrics.PaymentAmounts.WithLabelValues(string(payment.Currency)).Observe(payment.Amount.InexactFloat64())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetPayment returns a payment together with its notification.
func (s *PaymentService) GetPayment(ctx context.Context, id string) (*dto.PaymentDetailResponse, error) {
	payment, err := s.Payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, models.PaymentNotFound(id)
	}

	detail := &dto.PaymentDetailResponse{PaymentResponse: dto.NewPaymentResponse(payment)}

	notification, err := s.Notifications.FindByPaymentID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification != nil {
		resp := dto.NewNotificationResponse(notification)
		detail.Notification = &resp
	}

	return detail, nil
}

// GetPaymentsByAccount lists an account's payments, newest first.
func (s *PaymentService) GetPaymentsByAccount(ctx context.Context, accountID string, limit, offset int) ([]dto.PaymentResponse, error) {
	payments, err := s.Payments.FindByAccountID(ctx, accountID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, dto.NewPaymentResponse(&payments[i]))
	}
	return responses, nil
}
