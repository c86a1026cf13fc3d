package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatus string
type Currency string

const (
	// SUCCESS is the only terminal state: a payment row exists only after
	// the admission path ran its side effects.
	StatusSuccess PaymentStatus = "SUCCESS"

	CurrencyCOP Currency = "COP"
	CurrencyUSD Currency = "USD"

	DefaultCurrency = CurrencyCOP

	maxDescriptionLength = 255
)

var validate = validator.New()

type Payment struct {
	ID             string          `json:"id" gorm:"primaryKey"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:numeric(14,2)"`
	Currency       Currency        `json:"currency"`
	AccountID      string          `json:"accountId" gorm:"column:account_id"`
	Email          string          `json:"email"`
	Description    string          `json:"description,omitempty"`
	Status         PaymentStatus   `json:"status"`
	IdempotencyKey string          `json:"-" gorm:"column:idempotency_key;uniqueIndex"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = NewPaymentID()
	}
	return
}

// NewPaymentID generates an id like pay_a1b2c3d4e5f6.
func NewPaymentID() string {
	return "pay_" + shortID()
}

// NewNotificationID generates an id like ntf_x1y2z3w4v5u6.
func NewNotificationID() string {
	return "ntf_" + shortID()
}

// NewEventID generates an id like evt_f6e5d4c3b2a1.
func NewEventID() string {
	return "evt_" + shortID()
}

func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

func (p *Payment) Validate() error {
	if p.Amount.IsZero() || p.Amount.IsNegative() {
		return InvalidAmount("amount must be greater than zero")
	}
	if !p.Amount.Equal(p.Amount.Round(2)) {
		return InvalidAmount("amount cannot have more than 2 decimal places")
	}
	if !p.Currency.IsValid() {
		return InvalidCurrency("currency not allowed: " + string(p.Currency))
	}
	if strings.TrimSpace(p.AccountID) == "" {
		return InvalidAccount("accountId is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		return InvalidEmail("email is required")
	}
	if err := validate.Var(p.Email, "email"); err != nil {
		return InvalidEmail("email format is not valid")
	}
	if strings.TrimSpace(p.IdempotencyKey) == "" {
		return IdempotencyKeyRequired()
	}
	if len(p.Description) > maxDescriptionLength {
		return InvalidDescription("description cannot exceed 255 characters")
	}
	return nil
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyCOP, CurrencyUSD:
		return true
	default:
		return false
	}
}
