package facades

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/student-diary/internal/logger"
	"github.com/sbilibin2017/student-diary/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PasswordResetKafkaFacade hands password reset tokens to the mail
// delivery pipeline through a Kafka topic.
type PasswordResetKafkaFacade struct {
	writer KafkaWriter
}

// NewPasswordResetKafkaFacade creates a new facade. A nil writer disables publishing.
func NewPasswordResetKafkaFacade(writer KafkaWriter) *PasswordResetKafkaFacade {
	return &PasswordResetKafkaFacade{writer: writer}
}

// Notify publishes the notification keyed by recipient, so all messages
// for one address land on the same partition.
func (f *PasswordResetKafkaFacade) Notify(ctx context.Context, n models.PasswordResetNotification) error {
	if f.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping password reset notification", "recipient", n.Recipient)
		return nil
	}

	data, err := json.Marshal(n)
	if err != nil {
		logger.Log.Errorw("Failed to marshal password reset notification", "recipient", n.Recipient, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(n.Recipient),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish password reset notification", "recipient", n.Recipient, "error", err)
		return err
	}

	logger.Log.Infow("Password reset notification published", "recipient", n.Recipient, "expires_at", n.ExpiresAt)
	return nil
}
