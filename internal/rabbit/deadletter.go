package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/Jorgemunera/payment-notification-service/internal/models"
)

// DeadLetterManager implements the operator-facing dead letter operations.
// The DLQ itself is the storage medium: listing reads messages and puts
// them back with a nack-with-requeue, replaying republishes to the main
// exchange and acks the original away.
type DeadLetterManager struct {
	ch  Channel
	log *logrus.Entry
}

func NewDeadLetterManager(ch Channel) *DeadLetterManager {
	return &DeadLetterManager{
		ch:  ch,
		log: logrus.WithField("component", "dead-letter-manager"),
	}
}

// List drains up to maxMessages entries for inspection. Every fetched
// message is requeued immediately, so listing does not consume the queue.
func (m *DeadLetterManager) List(ctx context.Context, maxMessages int) ([]models.DeadLetterMessage, error) {
	queue, err := m.ch.QueueDeclarePassive(DeadLetterQueue, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("error inspecting dead letter queue: %w", err)
	}

	count := queue.Messages
	if count > maxMessages {
		count = maxMessages
	}

	messages := make([]models.DeadLetterMessage, 0, count)
	for i := 0; i < count; i++ {
		msg, ok, err := m.ch.Get(DeadLetterQueue, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		messages = append(messages, m.summarize(msg, i))

		if err := m.ch.Nack(msg.DeliveryTag, false, true); err != nil {
			return nil, err
		}
	}

	return messages, nil
}

// RetryOne scans the queue for messageID, republishes the match to the
// payments exchange with a replay marker and removes it from the DLQ.
// Messages seen during the scan that do not match are requeued. The scan is
// bounded by the queue depth at call time.
func (m *DeadLetterManager) RetryOne(ctx context.Context, messageID string) error {
	queue, err := m.ch.QueueDeclarePassive(DeadLetterQueue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("error inspecting dead letter queue: %w", err)
	}

	for i := 0; i < queue.Messages; i++ {
		msg, ok, err := m.ch.Get(DeadLetterQueue, false)
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		if m.messageID(msg, i) != messageID {
			if err := m.ch.Nack(msg.DeliveryTag, false, true); err != nil {
				return err
			}
			continue
		}

		if err := m.republish(ctx, msg); err != nil {
			// Keep the message in the DLQ if the republish failed.
			if nackErr := m.ch.Nack(msg.DeliveryTag, false, true); nackErr != nil {
				return nackErr
			}
			return err
		}
		if err := m.ch.Ack(msg.DeliveryTag, false); err != nil {
			return err
		}

		m.log.WithField("messageId", messageID).Info("dead letter message republished")
		return nil
	}

	return models.DeadLetterMessageNotFound(messageID)
}

// RetryAll republishes every message present in the DLQ at call time.
// Messages dead-lettered while the scan runs are not included.
func (m *DeadLetterManager) RetryAll(ctx context.Context) (int, error) {
	queue, err := m.ch.QueueDeclarePassive(DeadLetterQueue, true, false, false, false, nil)
	if err != nil {
		return 0, fmt.Errorf("error inspecting dead letter queue: %w", err)
	}

	retried := 0
	for i := 0; i < queue.Messages; i++ {
		msg, ok, err := m.ch.Get(DeadLetterQueue, false)
		if err != nil {
			return retried, err
		}
		if !ok {
			break
		}

		if err := m.republish(ctx, msg); err != nil {
			if nackErr := m.ch.Nack(msg.DeliveryTag, false, true); nackErr != nil {
				return retried, nackErr
			}
			return retried, err
		}
		if err := m.ch.Ack(msg.DeliveryTag, false); err != nil {
			return retried, err
		}
		retried++
	}

	m.log.WithField("count", retried).Info("dead letter messages republished")
	return retried, nil
}

func (m *DeadLetterManager) republish(ctx context.Context, msg amqp.Delivery) error {
	return m.ch.PublishWithContext(ctx, PaymentsExchange, PaymentSuccessRoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.MessageId,
		Timestamp:    time.Now().UTC(),
		Headers: amqp.Table{
			HeaderRetriedFromDLQ: true,
			HeaderRetryTimestamp: time.Now().UnixMilli(),
		},
		Body: msg.Body,
	})
}

func (m *DeadLetterManager) summarize(msg amqp.Delivery, position int) models.DeadLetterMessage {
	summary := models.DeadLetterMessage{
		MessageID:     m.messageID(msg, position),
		OriginalQueue: headerString(msg.Headers, headerFirstDeathQueue),
		Reason:        headerString(msg.Headers, headerFirstDeathReason),
		FailedAt:      firstDeathTime(msg.Headers),
	}

	var event models.DeliveryEvent
	if err := json.Unmarshal(msg.Body, &event); err == nil {
		summary.PaymentID = event.Payload.PaymentID
		summary.NotificationID = event.Payload.NotificationID
		summary.EventType = event.Type
		summary.Timestamp = event.Timestamp
	}

	return summary
}

func (m *DeadLetterManager) messageID(msg amqp.Delivery, position int) string {
	if msg.MessageId != "" {
		return msg.MessageId
	}
	return fmt.Sprintf("msg_%d", position)
}

func headerString(headers amqp.Table, key string) string {
	if headers == nil {
		return "unknown"
	}
	if value, ok := headers[key].(string); ok {
		return value
	}
	return "unknown"
}

// firstDeathTime digs the timestamp of the first dead-lettering out of the
// broker-maintained x-death header.
func firstDeathTime(headers amqp.Table) *time.Time {
	deaths, ok := headers[headerDeath].([]interface{})
	if !ok || len(deaths) == 0 {
		return nil
	}
	death, ok := deaths[0].(amqp.Table)
	if !ok {
		return nil
	}
	if t, ok := death["time"].(time.Time); ok {
		return &t
	}
	return nil
}
