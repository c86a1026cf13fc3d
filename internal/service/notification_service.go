package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Jorgemunera/payment-notification-service/internal/models"
	"github.com/Jorgemunera/payment-notification-service/internal/models/dto"
	"github.com/Jorgemunera/payment-notification-service/internal/repository/posgrest"
)

// EmailSender defines the interface for the outbound email provider.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// amountPrinter renders amounts the way the confirmation emails show them
// in Colombia: thousand separators with a decimal comma.
var amountPrinter = message.NewPrinter(language.MustParse("es-CO"))

// NotificationService drives a single notification through its state
// machine: load, short-circuit if already sent, mark PROCESSING, send,
// mark SENT. Failure handling (retries, FAILED marking) belongs to the
// consumer, which owns the attempt budget.
type NotificationService struct {
	Notifications NotificationRepo
	Email         EmailSender

	log *logrus.Entry
}

func NewNotificationService(notifications NotificationRepo, email EmailSender) *NotificationService {
	return &NotificationService{
		Notifications: notifications,
		Email:         email,
		log:           logrus.WithField("component", "notification-service"),
	}
}

// Process performs one delivery attempt for the event's notification.
// Sending an already SENT notification is a no-op success, which makes the
// operation safe under bus-level redelivery.
func (s *NotificationService) Process(ctx context.Context, event models.DeliveryEvent) error {
	notificationID := event.Payload.NotificationID

	notification, err := s.Notifications.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification == nil {
		return models.NotificationNotFound(notificationID)
	}

	if notification.IsSent() {
		s.log.WithField("notificationId", notificationID).Info("notification already sent, skipping")
		return nil
	}

	notification.MarkAsProcessing()
	if err := s.Notifications.Update(ctx, notification); err != nil {
		return err
	}

	subject := fmt.Sprintf("Confirmación de pago %s", event.Payload.PaymentID)
	body := fmt.Sprintf(
		"Su pago por %s ha sido procesado exitosamente. ID de transacción: %s",
		formatAmount(event.Payload.Amount, event.Payload.Currency),
		event.Payload.PaymentID,
	)

	if err := s.Email.Send(ctx, notification.Recipient, subject, body); err != nil {
		s.log.WithFields(logrus.Fields{
			"notificationId": notificationID,
			"attempts":       notification.Attempts,
		}).WithError(err).Error("error sending notification")
		return err
	}

	notification.MarkAsSent()
	if err := s.Notifications.Update(ctx, notification); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"notificationId": notificationID,
		"paymentId":      event.Payload.PaymentID,
		"recipient":      notification.Recipient,
	}).Info("notification sent")
	return nil
}

// MarkFailed records the terminal failure after the consumer exhausted its
// retries. A missing notification is not an error here: the caller is on a
// best-effort bookkeeping path.
func (s *NotificationService) MarkFailed(ctx context.Context, notificationID, errorMessage string) error {
	notification, err := s.Notifications.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification == nil {
		return nil
	}

	notification.MarkAsFailed(errorMessage)
	if err := s.Notifications.Update(ctx, notification); err != nil {
		return err
	}

	s.log.WithField("notificationId", notificationID).Info("notification marked as FAILED")
	return nil
}

// ResetForRetry puts a FAILED notification back to PENDING before a message
// replayed from the dead letter queue is reprocessed. Notifications in any
// other state are left untouched.
func (s *NotificationService) ResetForRetry(ctx context.Context, notificationID string) error {
	notification, err := s.Notifications.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification == nil || !notification.IsFailed() {
		return nil
	}

	notification.ResetForRetry()
	if err := s.Notifications.Update(ctx, notification); err != nil {
		return err
	}

	s.log.WithField("notificationId", notificationID).Info("notification reset for retry")
	return nil
}

// GetNotifications lists notifications with optional status/payment filters.
func (s *NotificationService) GetNotifications(ctx context.Context, query dto.ListNotificationsQuery) (*dto.NotificationListResponse, error) {
	if query.Limit <= 0 || query.Limit > 100 {
		query.Limit = 50
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	filters := posgrest.NotificationFilters{
		Status:    models.NotificationStatus(query.Status),
		PaymentID: query.PaymentID,
	}
	if query.Status != "" && !filters.Status.IsValid() {
		return nil, models.InvalidNotificationStatus("status not allowed: " + query.Status)
	}

	notifications, total, err := s.Notifications.FindAll(ctx, filters, query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.NewNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: items,
		Pagination: dto.Pagination{
			Total:   total,
			Limit:   query.Limit,
			Offset:  query.Offset,
			HasMore: int64(query.Offset+len(items)) < total,
		},
	}, nil
}

// CountByStatus reports how many notifications sit in each status.
func (s *NotificationService) CountByStatus(ctx context.Context) (map[models.NotificationStatus]int64, error) {
	return s.Notifications.CountByStatus(ctx)
}

func formatAmount(amount decimal.Decimal, currency models.Currency) string {
	return amountPrinter.Sprintf("$%v %s",
		number.Decimal(amount.InexactFloat64(), number.Scale(2)),
		currency,
	)
}
