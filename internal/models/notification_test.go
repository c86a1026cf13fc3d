package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jorgemunera/payment-notification-service/internal/models"
)

func TestNewNotification(t *testing.T) {
	payment := &models.Payment{
		ID:     models.NewPaymentID(),
		Amount: decimal.NewFromInt(5000),
		Email:  "cliente@example.com",
	}

	n := models.NewNotification(payment)

	assert.Regexp(t, "^ntf_[0-9a-f]{12}$", n.ID)
	assert.Equal(t, payment.ID, n.PaymentID)
	assert.Equal(t, models.NotificationTypeEmail, n.Type)
	assert.Equal(t, payment.Email, n.Recipient)
	assert.Equal(t, models.NotificationPending, n.Status)
	assert.Zero(t, n.Attempts)
	assert.True(t, n.CanBeProcessed())
}

func TestNotificationTransitions(t *testing.T) {
	t.Run("processing increments attempts", func(t *testing.T) {
		n := models.NewNotification(&models.Payment{ID: "pay_1", Email: "a@b.co"})

		n.MarkAsProcessing()
		assert.Equal(t, models.NotificationProcessing, n.Status)
		assert.Equal(t, 1, n.Attempts)
		require.NotNil(t, n.LastAttemptAt)
		assert.False(t, n.CanBeProcessed())

		n.MarkAsProcessing()
		assert.Equal(t, 2, n.Attempts)
	})

	t.Run("sent clears error state", func(t *testing.T) {
		n := models.NewNotification(&models.Payment{ID: "pay_1", Email: "a@b.co"})
		n.MarkAsProcessing()
		n.MarkAsFailed("smtp timeout")

		n.MarkAsSent()
		assert.Equal(t, models.NotificationSent, n.Status)
		require.NotNil(t, n.SentAt)
		assert.Nil(t, n.ErrorMessage)
		assert.True(t, n.IsSent())
		assert.False(t, n.IsFailed())
	})

	t.Run("failed records the error message", func(t *testing.T) {
		n := models.NewNotification(&models.Payment{ID: "pay_1", Email: "a@b.co"})

		n.MarkAsFailed("email service is not available")
		assert.Equal(t, models.NotificationFailed, n.Status)
		require.NotNil(t, n.ErrorMessage)
		assert.Equal(t, "email service is not available", *n.ErrorMessage)
		assert.True(t, n.IsFailed())
		assert.False(t, n.CanBeProcessed())
	})

	t.Run("reset for retry goes back to pending", func(t *testing.T) {
		n := models.NewNotification(&models.Payment{ID: "pay_1", Email: "a@b.co"})
		n.MarkAsProcessing()
		n.MarkAsFailed("smtp timeout")

		n.ResetForRetry()
		assert.Equal(t, models.NotificationPending, n.Status)
		assert.Nil(t, n.ErrorMessage)
		assert.Equal(t, 1, n.Attempts, "attempts history is preserved across resets")
		assert.True(t, n.CanBeProcessed())
	})

	t.Run("retried is processable", func(t *testing.T) {
		n := models.NewNotification(&models.Payment{ID: "pay_1", Email: "a@b.co"})
		n.MarkAsRetried()
		assert.Equal(t, models.NotificationRetried, n.Status)
		assert.True(t, n.CanBeProcessed())
	})
}

func TestNotificationValidate(t *testing.T) {
	valid := func() *models.Notification {
		return &models.Notification{
			ID:        models.NewNotificationID(),
			PaymentID: "pay_abc123",
			Type:      models.NotificationTypeEmail,
			Recipient: "cliente@example.com",
			Status:    models.NotificationPending,
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing payment reference", func(t *testing.T) {
		n := valid()
		n.PaymentID = ""

		err := n.Validate()
		require.Error(t, err)
		de, _ := models.AsDomainError(err)
		assert.Equal(t, "INVALID_PAYMENT_ID", de.Code)
	})

	t.Run("unsupported type", func(t *testing.T) {
		n := valid()
		n.Type = "SMS"

		err := n.Validate()
		require.Error(t, err)
		de, _ := models.AsDomainError(err)
		assert.Equal(t, "INVALID_NOTIFICATION_TYPE", de.Code)
	})

	t.Run("malformed recipient", func(t *testing.T) {
		n := valid()
		n.Recipient = "nope"

		err := n.Validate()
		require.Error(t, err)
		de, _ := models.AsDomainError(err)
		assert.Equal(t, "INVALID_RECIPIENT", de.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		n := valid()
		n.Status = "QUEUED"

		err := n.Validate()
		require.Error(t, err)
		de, _ := models.AsDomainError(err)
		assert.Equal(t, "INVALID_STATUS", de.Code)
	})
}

func TestNotificationStatusIsValid(t *testing.T) {
	for _, s := range []models.NotificationStatus{
		models.NotificationPending,
		models.NotificationProcessing,
		models.NotificationSent,
		models.NotificationFailed,
		models.NotificationRetried,
	} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, models.NotificationStatus("QUEUED").IsValid())
}
