// Package service holds the outbound integrations the handlers call
// into.  Currently that is the AMQP publisher for booking events.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/queue"
)

// Publisher publishes booking events to the configured AMQP broker.
// It dials per publish, which keeps the happy path free of shared
// connection state; booking volume is nowhere near where that
// matters.  Errors are logged and returned so callers can ignore
// them without interrupting the request flow.
type Publisher struct {
	URL string
	Log zerolog.Logger
}

// NewPublisher returns a Publisher, or nil when no broker URL is
// configured so callers can skip publishing entirely.
func NewPublisher(url string, log zerolog.Logger) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{URL: url, Log: log}
}

// PublishBookingCreated sends the event to the booking.created
// queue.  The queue is declared durable and messages are persistent
// so they survive a broker restart.
func (p *Publisher) PublishBookingCreated(ctx context.Context, event queue.BookingCreatedEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		p.Log.Warn().Err(err).Msg("amqp dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.Log.Warn().Err(err).Msg("amqp channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare so publisher and consumer can start in any order.
	if _, err := ch.QueueDeclare(queue.BookingCreatedQueue, true, false, false, false, nil); err != nil {
		p.Log.Warn().Err(err).Msg("amqp queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue.BookingCreatedQueue, false, false, pub); err != nil {
		p.Log.Warn().Err(err).Msg("amqp publish failed")
		return err
	}
	return nil
}
