package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Jorgemunera/payment-notification-service/internal/models"
)

// EmailStatus is the operator-facing report of the sender.
type EmailStatus struct {
	Service string `json:"service"`
	Enabled bool   `json:"enabled"`
	Status  string `json:"status"`
}

// EmailService simulates an outbound email provider. Availability can be
// toggled at runtime to exercise the retry and dead letter paths.
type EmailService struct {
	mu      sync.Mutex
	enabled bool

	// latency simulates the provider round trip; replaced in tests.
	latency func() time.Duration

	log *logrus.Entry
}

func NewEmailService(enabled bool) *EmailService {
	return &EmailService{
		enabled: enabled,
		latency: func() time.Duration {
			return time.Duration(100+rand.IntN(200)) * time.Millisecond
		},
		log: logrus.WithField("component", "email-service"),
	}
}

func (s *EmailService) IsEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

func (s *EmailService) Enable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = true
	s.log.Info("email service enabled")
}

func (s *EmailService) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = false
	s.log.Warn("email service disabled")
}

// Send delivers an email, or fails with NOTIFICATION_SERVICE_UNAVAILABLE
// when the service is disabled.
func (s *EmailService) Send(ctx context.Context, to, subject, body string) error {
	select {
	case <-time.After(s.latency()):
	case <-ctx.Done():
		return ctx.Err()
	}

	if !s.IsEnabled() {
		s.log.WithField("to", to).Error("email service unavailable")
		return models.NotificationServiceUnavailable("email service is not available")
	}

	s.log.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
		"body":    body,
	}).Info("email sent")
	return nil
}

func (s *EmailService) GetStatus() EmailStatus {
	status := "operational"
	if !s.IsEnabled() {
		status = "unavailable"
	}
	return EmailStatus{
		Service: "email",
		Enabled: s.IsEnabled(),
		Status:  status,
	}
}
