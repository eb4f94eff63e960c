package queue

import (
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// StartBookingConsumer connects to the broker, declares the
// booking.created queue and logs each event as it arrives.  It runs
// a reconnect loop with capped backoff and never returns; run it in
// its own goroutine.  A malformed message is logged and dropped so
// one bad payload cannot wedge the queue.
func StartBookingConsumer(url string, log zerolog.Logger) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Warn().Err(err).Dur("retry_in", backoff).Msg("booking consumer: dial failed")
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn, log); err != nil {
			log.Warn().Err(err).Msg("booking consumer: loop ended, reconnecting")
		}
		_ = conn.Close()
		time.Sleep(time.Second)
	}
}

func consumeLoop(conn *amqp.Connection, log zerolog.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(BookingCreatedQueue, true, false, false, false, nil); err != nil {
		return err
	}
	deliveries, err := ch.Consume(BookingCreatedQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for d := range deliveries {
		var event BookingCreatedEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			log.Warn().Err(err).Msg("booking consumer: bad payload")
			_ = d.Reject(false)
			continue
		}
		log.Info().
			Str("booking_id", event.BookingID).
			Str("user_email", event.UserEmail).
			Str("room_id", event.RoomID).
			Str("booking_date", event.BookingDate).
			Str("created_at", event.CreatedAt).
			Msg("booking created")
		_ = d.Ack(false)
	}
	return nil
}
