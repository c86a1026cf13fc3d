package rabbit

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	PaymentsExchange   = "payments.events"
	DeadLetterExchange = "payments.dlx"

	NotificationsQueue = "notifications.payment-events"
	DeadLetterQueue    = "notifications.dead-letter"

	PaymentSuccessRoutingKey     = "payment.success"
	NotificationFailedRoutingKey = "notification.failed"

	// HeaderRetriedFromDLQ marks a message republished by an operator from
	// the dead letter queue.
	HeaderRetriedFromDLQ   = "x-retried-from-dlq"
	HeaderRetryTimestamp   = "x-retry-timestamp"
	headerFirstDeathQueue  = "x-first-death-queue"
	headerFirstDeathReason = "x-first-death-reason"
	headerDeath            = "x-death"
)

// SetupTopology declares the exchanges, queues and bindings. Both the API
// and the worker run it on startup; declarations are idempotent.
//
// The notifications queue dead-letters into the DLX at topology level, so
// a nack without requeue is all the consumer needs to route an exhausted
// message to the dead letter queue.
func (c *Client) SetupTopology() error {
	if err := c.ch.ExchangeDeclare(PaymentsExchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}
	if err := c.ch.ExchangeDeclare(DeadLetterExchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}

	_, err := c.ch.QueueDeclare(NotificationsQueue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    DeadLetterExchange,
		"x-dead-letter-routing-key": NotificationFailedRoutingKey,
	})
	if err != nil {
		return err
	}
	if _, err := c.ch.QueueDeclare(DeadLetterQueue, true, false, false, false, nil); err != nil {
		return err
	}

	if err := c.ch.QueueBind(NotificationsQueue, PaymentSuccessRoutingKey, PaymentsExchange, false, nil); err != nil {
		return err
	}
	if err := c.ch.QueueBind(DeadLetterQueue, "#", DeadLetterExchange, false, nil); err != nil {
		return err
	}

	c.log.Info("rabbitmq topology declared")
	return nil
}
