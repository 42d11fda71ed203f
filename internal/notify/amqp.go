package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQP publishes events to a durable RabbitMQ queue named after the event
// kind. The connection is opened lazily and reopened after failures.
type AMQP struct {
	URL string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQP returns a publisher for url. Nothing is dialed until the first
// Publish.
func NewAMQP(url string) *AMQP {
	return &AMQP{URL: url}
}

func (a *AMQP) Publish(ctx context.Context, ev ItemEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ch, err := a.channel()
	if err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(ev.Kind, true, false, false, false, nil); err != nil {
		a.reset()
		return fmt.Errorf("declaring queue %s: %w", ev.Kind, err)
	}

	err = ch.PublishWithContext(ctx, "", ev.Kind, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		a.reset()
		return fmt.Errorf("publishing %s: %w", ev.Kind, err)
	}
	return nil
}

// Close shuts down the channel and connection.
func (a *AMQP) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reset()
	return nil
}

func (a *AMQP) channel() (*amqp.Channel, error) {
	if a.ch != nil && !a.ch.IsClosed() {
		return a.ch, nil
	}
	a.reset()

	conn, err := amqp.Dial(a.URL)
	if err != nil {
		return nil, fmt.Errorf("dialing rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening rabbitmq channel: %w", err)
	}
	a.conn, a.ch = conn, ch
	return ch, nil
}

func (a *AMQP) reset() {
	if a.ch != nil {
		_ = a.ch.Close()
		a.ch = nil
	}
	if a.conn != nil {
		_ = a.conn.Close()
		a.conn = nil
	}
}
