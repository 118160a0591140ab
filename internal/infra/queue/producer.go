package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderPayload is the message the due-follow-up sweep publishes for the
// mail worker.
type ReminderPayload struct {
	FollowUpID  string    `json:"follow_up_id"`
	ContactID   string    `json:"contact_id"`
	ContactName string    `json:"contact_name"`
	UserID      string    `json:"user_id"`
	OwnerEmail  string    `json:"owner_email"`
	Frequency   string    `json:"frequency"`
	Notes       string    `json:"notes,omitempty"`
	DueDate     time.Time `json:"due_date"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishReminder(ctx context.Context, payload ReminderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
