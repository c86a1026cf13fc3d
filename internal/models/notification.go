package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type NotificationStatus string
type NotificationType string

const (
	NotificationPending    NotificationStatus = "PENDING"
	NotificationProcessing NotificationStatus = "PROCESSING"
	NotificationSent       NotificationStatus = "SENT"
	NotificationFailed     NotificationStatus = "FAILED"
	NotificationRetried    NotificationStatus = "RETRIED"

	NotificationTypeEmail NotificationType = "EMAIL"
)

type Notification struct {
	ID            string             `json:"id" gorm:"primaryKey"`
	PaymentID     string             `json:"paymentId" gorm:"column:payment_id;index"`
	Type          NotificationType   `json:"type"`
	Recipient     string             `json:"recipient"`
	Status        NotificationStatus `json:"status"`
	Attempts      int                `json:"attempts"`
	LastAttemptAt *time.Time         `json:"lastAttemptAt" gorm:"column:last_attempt_at"`
	SentAt        *time.Time         `json:"sentAt" gorm:"column:sent_at"`
	ErrorMessage  *string            `json:"errorMessage" gorm:"column:error_message"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = NewNotificationID()
	}
	return
}

// NewNotification builds the PENDING companion notification created together
// with a payment at admission time.
func NewNotification(payment *Payment) *Notification {
	now := time.Now().UTC()
	return &Notification{
		ID:        NewNotificationID(),
		PaymentID: payment.ID,
		Type:      NotificationTypeEmail,
		Recipient: payment.Email,
		Status:    NotificationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (n *Notification) Validate() error {
	if strings.TrimSpace(n.PaymentID) == "" {
		return InvalidPaymentReference("paymentId is required")
	}
	if n.Type != NotificationTypeEmail {
		return InvalidNotificationType("notification type not allowed: " + string(n.Type))
	}
	if strings.TrimSpace(n.Recipient) == "" {
		return InvalidRecipient("recipient is required")
	}
	if err := validate.Var(n.Recipient, "email"); err != nil {
		return InvalidRecipient("recipient email format is not valid")
	}
	if !n.Status.IsValid() {
		return InvalidNotificationStatus("status not allowed: " + string(n.Status))
	}
	return nil
}

// MarkAsProcessing transitions into PROCESSING. Attempts only ever grows
// through this transition.
func (n *Notification) MarkAsProcessing() {
	now := time.Now().UTC()
	n.Status = NotificationProcessing
	n.Attempts++
	n.LastAttemptAt = &now
	n.UpdatedAt = now
}

func (n *Notification) MarkAsSent() {
	now := time.Now().UTC()
	n.Status = NotificationSent
	n.SentAt = &now
	n.ErrorMessage = nil
	n.UpdatedAt = now
}

func (n *Notification) MarkAsFailed(errorMessage string) {
	n.Status = NotificationFailed
	n.ErrorMessage = &errorMessage
	n.UpdatedAt = time.Now().UTC()
}

// MarkAsRetried records that a message was replayed from the dead letter
// queue. The default consumer flow uses ResetForRetry instead; this
// transition is kept as a separate capability.
func (n *Notification) MarkAsRetried() {
	n.Status = NotificationRetried
	n.UpdatedAt = time.Now().UTC()
}

// ResetForRetry puts a FAILED notification back to PENDING so a replayed
// message starts with clean error state.
func (n *Notification) ResetForRetry() {
	n.Status = NotificationPending
	n.ErrorMessage = nil
	n.UpdatedAt = time.Now().UTC()
}

func (n *Notification) CanBeProcessed() bool {
	return n.Status == NotificationPending || n.Status == NotificationRetried
}

func (n *Notification) IsSent() bool {
	return n.Status == NotificationSent
}

func (n *Notification) IsFailed() bool {
	return n.Status == NotificationFailed
}

func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationPending, NotificationProcessing, NotificationSent, NotificationFailed, NotificationRetried:
		return true
	default:
		return false
	}
}
