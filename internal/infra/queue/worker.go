package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// ReminderSender delivers one reminder to the owner's inbox.
type ReminderSender interface {
	SendReminder(to, contactName, frequency, notes string) error
}

// Worker consumes reminder payloads and hands them to the mail sender. It
// holds no database access; everything it needs rides in the message.
type Worker struct {
	Channel *amqp.Channel
	Sender  ReminderSender
}

func NewWorker(ch *amqp.Channel, sender ReminderSender) *Worker {
	return &Worker{Channel: ch, Sender: sender}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		logrus.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ReminderPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				logrus.WithError(err).Error("reminder message has invalid JSON, dropping")
				// Malformed message. Reject without requeue so it lands
				// in the DLQ instead of blocking the queue.
				d.Nack(false, false)
				continue
			}

			log := logrus.WithFields(logrus.Fields{
				"follow_up_id": payload.FollowUpID,
				"contact_id":   payload.ContactID,
			})
			log.Info("processing follow-up reminder")

			if err := w.Sender.SendReminder(payload.OwnerEmail, payload.ContactName, payload.Frequency, payload.Notes); err != nil {
				log.WithError(err).Error("reminder delivery failed")
				d.Nack(false, false)
			} else {
				log.Info("reminder delivered")
				d.Ack(false)
			}
		}
	}()

	logrus.Infof("reminder worker waiting on queue %q", queueName)
	<-forever
}
