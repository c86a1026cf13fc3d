package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jorgemunera/payment-notification-service/internal/models"
)

type CreatePaymentRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	AccountID      string          `json:"accountId"`
	Email          string          `json:"email"`
	Description    string          `json:"description"`
	IdempotencyKey string          `json:"-"`
}

func (r *CreatePaymentRequest) Sanitize() {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	r.AccountID = strings.TrimSpace(r.AccountID)
	r.Email = strings.TrimSpace(r.Email)
	r.Description = strings.TrimSpace(r.Description)
	r.IdempotencyKey = strings.TrimSpace(r.IdempotencyKey)
}

func (r *CreatePaymentRequest) ToEntity() *models.Payment {
	currency := models.Currency(r.Currency)
	if r.Currency == "" {
		currency = models.DefaultCurrency
	}
	now := time.Now().UTC()
	return &models.Payment{
		ID:             models.NewPaymentID(),
		Amount:         r.Amount,
		Currency:       currency,
		AccountID:      r.AccountID,
		Email:          r.Email,
		Description:    r.Description,
		Status:         models.StatusSuccess,
		IdempotencyKey: r.IdempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// PaymentResponse is the externally visible payment representation; it is
// also the value cached under the idempotency key, so a replayed request
// returns exactly the same body.
type PaymentResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	AccountID   string          `json:"accountId"`
	Email       string          `json:"email"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func NewPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		Amount:      p.Amount,
		Currency:    string(p.Currency),
		AccountID:   p.AccountID,
		Email:       p.Email,
		Description: p.Description,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type PaymentDetailResponse struct {
	PaymentResponse
	Notification *NotificationResponse `json:"notification"`
}

type NotificationResponse struct {
	ID            string     `json:"id"`
	PaymentID     string     `json:"paymentId"`
	Type          string     `json:"type"`
	Recipient     string     `json:"recipient"`
	Status        string     `json:"status"`
	Attempts      int        `json:"attempts"`
	LastAttemptAt *time.Time `json:"lastAttemptAt"`
	SentAt        *time.Time `json:"sentAt"`
	ErrorMessage  *string    `json:"errorMessage"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func NewNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		PaymentID:     n.PaymentID,
		Type:          string(n.Type),
		Recipient:     n.Recipient,
		Status:        string(n.Status),
		Attempts:      n.Attempts,
		LastAttemptAt: n.LastAttemptAt,
		SentAt:        n.SentAt,
		ErrorMessage:  n.ErrorMessage,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

type ListNotificationsQuery struct {
	Status    string `form:"status"`
	PaymentID string `form:"paymentId"`
	Limit     int    `form:"limit,default=50"`
	Offset    int    `form:"offset,default=0"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Pagination    Pagination             `json:"pagination"`
}

type DeadLetterListResponse struct {
	Count    int                        `json:"count"`
	Messages []models.DeadLetterMessage `json:"messages"`
}

type RetryMessageResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
}

type RetryAllResponse struct {
	Success      bool   `json:"success"`
	RetriedCount int    `json:"retriedCount"`
	Message      string `json:"message"`
}
