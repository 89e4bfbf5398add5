package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/gstippagol/habit/internal/config"
	"github.com/gstippagol/habit/internal/domain/entity"
	"github.com/gstippagol/habit/internal/domain/repository"
	"github.com/gstippagol/habit/internal/domain/service"
)

// Consumer reads user events and drives the notification pipeline.
type Consumer struct {
	reader           *kafka.Reader
	notificationRepo repository.NotificationRepository
	email            service.EmailService
}

// NewConsumer creates a new Kafka consumer.
func NewConsumer(
	cfg *config.KafkaConfig,
	notificationRepo repository.NotificationRepository,
	email service.EmailService,
) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	return &Consumer{
		reader:           reader,
		notificationRepo: notificationRepo,
		email:            email,
	}
}

// Start consumes messages until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	log.Println("Starting Kafka consumer...")

	for {
		select {
		case <-ctx.Done():
			log.Println("Stopping Kafka consumer...")
			return c.reader.Close()
		default:
			message, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return c.reader.Close()
				}
				log.Printf("Error reading message: %v", err)
				continue
			}

			if err := c.processMessage(ctx, message); err != nil {
				// Keep consuming even when one message fails.
				log.Printf("Error processing message: %v", err)
			}
		}
	}
}

func (c *Consumer) processMessage(ctx context.Context, message kafka.Message) error {
	var envelope Envelope
	if err := json.Unmarshal(message.Value, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	log.Printf("Received event: %s (ID: %s)", envelope.EventType, envelope.EventID)

	switch envelope.EventType {
	case EventTypeUserRegistered:
		var event UserRegisteredEvent
		if err := json.Unmarshal(envelope.Payload, &event); err != nil {
			return fmt.Errorf("failed to unmarshal registration payload: %w", err)
		}
		return c.handleUserRegistered(ctx, &event)
	default:
		log.Printf("Unknown event type: %s", envelope.EventType)
		return nil
	}
}

func (c *Consumer) handleUserRegistered(ctx context.Context, event *UserRegisteredEvent) error {
	log.Printf("Sending verification email to %s (user_id: %s)", event.Email, event.UserID)

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return fmt.Errorf("invalid user_id in event: %w", err)
	}

	now := time.Now().UTC()
	record := entity.NewNotification(userID, entity.NotificationTypeVerification,
		"Verify Your Email - Habit Tracker", event.Email, now)
	if err := c.notificationRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	if err := c.email.SendVerificationEmail(ctx, event.Email, event.Username, event.VerificationToken); err != nil {
		record.MarkFailed(err.Error(), time.Now().UTC())
		if uerr := c.notificationRepo.Update(ctx, record); uerr != nil {
			log.Printf("Failed to mark notification failed: %v", uerr)
		}
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	record.MarkSent(time.Now().UTC())
	if err := c.notificationRepo.Update(ctx, record); err != nil {
		log.Printf("Failed to mark notification sent: %v", err)
	}

	return nil
}
