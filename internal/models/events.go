package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSucceededEventType is both the event type and the routing key used
// on the payments exchange.
const PaymentSucceededEventType = "payment.success"

// DeliveryEvent is the message published after a payment is admitted and
// consumed by the notification pipeline. It is transient: it lives on the
// bus, never in the relational store.
type DeliveryEvent struct {
	ID        string               `json:"id"`
	Type      string               `json:"type"`
	Timestamp time.Time            `json:"timestamp"`
	Payload   DeliveryEventPayload `json:"payload"`
}

type DeliveryEventPayload struct {
	PaymentID      string          `json:"paymentId"`
	NotificationID string          `json:"notificationId"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       Currency        `json:"currency"`
	AccountID      string          `json:"accountId"`
	Email          string          `json:"email"`
}

// NewDeliveryEvent builds the single payment.success event produced per
// admitted payment.
func NewDeliveryEvent(payment *Payment, notification *Notification) DeliveryEvent {
	return DeliveryEvent{
		ID:        NewEventID(),
		Type:      PaymentSucceededEventType,
		Timestamp: time.Now().UTC(),
		Payload: DeliveryEventPayload{
			PaymentID:      payment.ID,
			NotificationID: notification.ID,
			Amount:         payment.Amount,
			Currency:       payment.Currency,
			AccountID:      payment.AccountID,
			Email:          payment.Email,
		},
	}
}

// DeadLetterMessage is the inspection view of an entry held in the dead
// letter queue: the original event excerpt plus the routing metadata the
// broker attached when the message was dead-lettered.
type DeadLetterMessage struct {
	MessageID      string     `json:"messageId"`
	PaymentID      string     `json:"paymentId"`
	NotificationID string     `json:"notificationId"`
	OriginalQueue  string     `json:"originalQueue"`
	Reason         string     `json:"reason"`
	FailedAt       *time.Time `json:"failedAt"`
	EventType      string     `json:"eventType"`
	Timestamp      time.Time  `json:"timestamp"`
}
