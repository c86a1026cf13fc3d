package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/Jorgemunera/payment-notification-service/internal/models"
	"github.com/Jorgemunera/payment-notification-service/internal/rabbit"
)

// RabbitPublisher publishes delivery events to the payments exchange as
// persistent JSON messages. The event id doubles as the bus message id so
// dead letter entries can later be matched by id.
type RabbitPublisher struct {
	ch  rabbit.Channel
	log *logrus.Entry
}

func NewRabbitPublisher(ch rabbit.Channel) *RabbitPublisher {
	return &RabbitPublisher{
		ch:  ch,
		log: logrus.WithField("component", "publisher"),
	}
}

func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, event models.DeliveryEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshaling event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, rabbit.PaymentsExchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    time.Now().UTC(),
		Body:         data,
	})
	if err != nil {
		return fmt.Errorf("error publishing event %s: %w", event.ID, err)
	}

	p.log.WithFields(logrus.Fields{
		"eventId":    event.ID,
		"routingKey": routingKey,
	}).Debug("event published")
	return nil
}
