package subscriber

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/Jorgemunera/payment-notification-service/internal/metrics"
	"github.com/Jorgemunera/payment-notification-service/internal/models"
	"github.com/Jorgemunera/payment-notification-service/internal/rabbit"
)

// NotificationProcessor defines what the consumer needs from the
// notification service.
type NotificationProcessor interface {
	Process(ctx context.Context, event models.DeliveryEvent) error
	ResetForRetry(ctx context.Context, notificationID string) error
	MarkFailed(ctx context.Context, notificationID, errorMessage string) error
}

// Consumer drains the delivery queue one message at a time (prefetch 1,
// manual ack) and drives the notification state machine.
//
// Retries happen inside a single delivery: the consumer sleeps and calls
// the processor again instead of requeueing through the bus. Only after
// the attempt budget is exhausted does it nack without requeue, which lets
// the topology-level dead letter routing capture the message.
type Consumer struct {
	processor  NotificationProcessor
	maxRetries int

	// sleep is replaced in tests to observe the backoff schedule.
	sleep func(context.Context, time.Duration)

	log *logrus.Entry
}

func NewConsumer(processor NotificationProcessor, maxRetries int) *Consumer {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Consumer{
		processor:  processor,
		maxRetries: maxRetries,
		sleep:      sleepWithContext,
		log:        logrus.WithField("component", "notification-consumer"),
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// Listen processes deliveries until the channel closes or ctx is done.
func (c *Consumer) Listen(ctx context.Context, deliveries <-chan amqp.Delivery) {
	c.log.WithField("maxRetries", c.maxRetries).Info("consumer listening")

	for {
		select {
		case <-ctx.Done():
			c.log.Info("consumer stopped")
			return
		case msg, ok := <-deliveries:
			if !ok {
				c.log.Warn("delivery channel closed")
				return
			}
			c.handle(ctx, msg)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg amqp.Delivery) {
	var event models.DeliveryEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		// Structurally invalid messages get no retries.
		c.log.WithError(err).Error("malformed message, sending to dead letter queue")
		c.nack(msg, false)
		metrics.NotificationsProcessedTotal.WithLabelValues("malformed").Inc()
		return
	}

	log := c.log.WithFields(logrus.Fields{
		"eventId":        event.ID,
		"paymentId":      event.Payload.PaymentID,
		"notificationId": event.Payload.NotificationID,
	})
	log.Info("message received")

	if isRetriedFromDLQ(msg.Headers) {
		log.Info("message replayed from dead letter queue, resetting notification")
		if err := c.processor.ResetForRetry(ctx, event.Payload.NotificationID); err != nil {
			log.WithError(err).Error("error resetting notification for retry")
		}
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		lastErr = c.processor.Process(ctx, event)
		if lastErr == nil {
			c.ack(msg)
			metrics.NotificationsProcessedTotal.WithLabelValues("sent").Inc()
			log.WithField("attempt", attempt+1).Info("message processed")
			return
		}

		if models.IsNotificationNotFound(lastErr) {
			// No row to retry against; retrying cannot help.
			log.WithError(lastErr).Error("notification missing, sending to dead letter queue")
			c.nack(msg, false)
			metrics.NotificationsProcessedTotal.WithLabelValues("missing").Inc()
			return
		}

		if attempt < c.maxRetries-1 {
			delay := backoff(attempt)
			log.WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"delay":   delay.String(),
			}).WithError(lastErr).Warn("processing failed, retrying")
			metrics.NotificationRetriesTotal.Inc()
			c.sleep(ctx, delay)

			if ctx.Err() != nil {
				// Shutting down mid-retry: hand the message back to the
				// queue instead of burning the remaining attempts.
				log.Info("shutdown during retry wait, requeueing message")
				c.nack(msg, true)
				return
			}
		}
	}

	log.WithError(lastErr).Error("retries exhausted, sending to dead letter queue")

	// Best-effort bookkeeping: a failure here must not prevent the nack.
	if err := c.processor.MarkFailed(ctx, event.Payload.NotificationID, lastErr.Error()); err != nil {
		log.WithError(err).Error("error marking notification as FAILED")
	}

	c.nack(msg, false)
	metrics.NotificationsProcessedTotal.WithLabelValues("failed").Inc()
}

func (c *Consumer) ack(msg amqp.Delivery) {
	if err := msg.Ack(false); err != nil {
		c.log.WithError(err).Error("error acknowledging message")
	}
}

func (c *Consumer) nack(msg amqp.Delivery, requeue bool) {
	if err := msg.Nack(false, requeue); err != nil {
		c.log.WithError(err).Error("error rejecting message")
	}
}

// backoff returns 1s, 2s, 4s, ... for attempt 0, 1, 2, ...
func backoff(attempt int) time.Duration {
	return time.Duration(1<<attempt) * time.Second
}

func isRetriedFromDLQ(headers amqp.Table) bool {
	if headers == nil {
		return false
	}
	retried, ok := headers[rabbit.HeaderRetriedFromDLQ].(bool)
	return ok && retried
}
