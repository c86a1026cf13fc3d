package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jorgemunera/payment-notification-service/internal/models"
)

func instantEmailService(enabled bool) *EmailService {
	svc := NewEmailService(enabled)
	svc.latency = func() time.Duration { return 0 }
	return svc
}

func TestEmailServiceSend(t *testing.T) {
	t.Run("sends when enabled", func(t *testing.T) {
		svc := instantEmailService(true)
		assert.NoError(t, svc.Send(context.Background(), "cliente@example.com", "asunto", "cuerpo"))
	})

	t.Run("fails when disabled", func(t *testing.T) {
		svc := instantEmailService(false)

		err := svc.Send(context.Background(), "cliente@example.com", "asunto", "cuerpo")

		require.Error(t, err)
		de, ok := models.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, "NOTIFICATION_SERVICE_UNAVAILABLE", de.Code)
	})

	t.Run("respects context cancellation during latency", func(t *testing.T) {
		svc := NewEmailService(true)
		svc.latency = func() time.Duration { return time.Minute }

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := svc.Send(ctx, "cliente@example.com", "asunto", "cuerpo")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEmailServiceToggle(t *testing.T) {
	svc := instantEmailService(true)

	assert.True(t, svc.IsEnabled())
	assert.Equal(t, "operational", svc.GetStatus().Status)

	svc.Disable()
	assert.False(t, svc.IsEnabled())
	status := svc.GetStatus()
	assert.Equal(t, "email", status.Service)
	assert.Equal(t, "unavailable", status.Status)
	assert.False(t, status.Enabled)

	svc.Enable()
	assert.True(t, svc.IsEnabled())
}
