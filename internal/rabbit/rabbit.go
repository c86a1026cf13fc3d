package rabbit

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Channel is the subset of *amqp091.Channel the service uses. The DLQ
// manager and publisher are written against it so they can be exercised
// with a fake in tests.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Get(queue string, autoAck bool) (amqp.Delivery, bool, error)
	Ack(tag uint64, multiple bool) error
	Nack(tag uint64, multiple, requeue bool) error
	QueueDeclarePassive(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
}

// Client owns the broker connection and channel. It is built in main and
// injected where needed; there is no package-level connection state.
type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	log  *logrus.Entry
}

// Connect dials the broker and opens a channel with prefetch 1, so a
// consumer holds at most one unacknowledged message at a time.
func Connect(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error opening channel: %w", err)
	}

	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("error setting prefetch: %w", err)
	}

	log := logrus.WithField("component", "rabbitmq")
	log.Info("connected to rabbitmq")

	return &Client{conn: conn, ch: ch, log: log}, nil
}

func (c *Client) Channel() *amqp.Channel {
	return c.ch
}

// Consume starts delivering messages from the queue with manual
// acknowledgment.
func (c *Client) Consume(queue string) (<-chan amqp.Delivery, error) {
	return c.ch.Consume(queue, "", false, false, false, false, nil)
}

func (c *Client) HealthCheck() error {
	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

func (c *Client) Close() error {
	if c.ch != nil {
		if err := c.ch.Close(); err != nil {
			c.log.WithError(err).Warn("error closing channel")
		}
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
