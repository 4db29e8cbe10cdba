package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	BookingCreatedQueue   = "booking.created"
	BookingCancelledQueue = "booking.cancelled"
)

// Publisher pushes booking events to RabbitMQ. Publishing is
// best-effort: failures are logged and returned but must never abort
// the request that triggered the event. A nil connection turns every
// publish into a no-op.
type Publisher struct {
	conn   *amqp.Connection
	logger *slog.Logger
}

func NewPublisher(conn *amqp.Connection, logger *slog.Logger) *Publisher {
	return &Publisher{conn: conn, logger: logger}
}

func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	return p.publish(ctx, BookingCreatedQueue, event)
}

func (p *Publisher) PublishBookingCancelled(ctx context.Context, event BookingCancelledEvent) error {
	return p.publish(ctx, BookingCancelledQueue, event)
}

func (p *Publisher) publish(ctx context.Context, queueName string, event interface{}) error {
	if p == nil || p.conn == nil {
		return nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		p.logger.Error("rabbitmq channel open failed", "queue", queueName, "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable queue so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		p.logger.Error("rabbitmq queue declare failed", "queue", queueName, "error", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %v", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		p.logger.Error("rabbitmq publish failed", "queue", queueName, "error", err)
		return err
	}
	return nil
}
