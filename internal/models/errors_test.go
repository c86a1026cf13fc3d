package models_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jorgemunera/payment-notification-service/internal/models"
)

func TestAsDomainError(t *testing.T) {
	de, ok := models.AsDomainError(models.PaymentNotFound("pay_1"))
	require.True(t, ok)
	assert.Equal(t, "PAYMENT_NOT_FOUND", de.Code)

	wrapped := fmt.Errorf("handling request: %w", models.InvalidAmount("too small"))
	de, ok = models.AsDomainError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "INVALID_AMOUNT", de.Code)

	_, ok = models.AsDomainError(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsNotificationNotFound(t *testing.T) {
	assert.True(t, models.IsNotificationNotFound(models.NotificationNotFound("ntf_1")))
	assert.True(t, models.IsNotificationNotFound(fmt.Errorf("processing: %w", models.NotificationNotFound("ntf_1"))))
	assert.False(t, models.IsNotificationNotFound(models.PaymentNotFound("pay_1")))
	assert.False(t, models.IsNotificationNotFound(errors.New("notification not found")))
	assert.False(t, models.IsNotificationNotFound(nil))
}
