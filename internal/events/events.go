// Package events publishes best-effort audit events. Publishing is
// fire-and-forget: a broker outage degrades to log lines, never to a
// failed request.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TypeUserRegistered     = "user_registered"
	TypeAdminRegistered    = "admin_registered"
	TypeAdminApproved      = "admin_approved"
	TypeAdminRejected      = "admin_rejected"
	TypeAdminRemoved       = "admin_removed"
	TypeOrderCreated       = "order_created"
	TypeOrderStatusUpdated = "order_status_updated"
)

type Event struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, key string, e Event)
	Close() error
}

// Noop is the default publisher when no brokers are configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, Event) {}
func (Noop) Close() error                           { return nil }

type Kafka struct {
	w   *kafka.Writer
	log *slog.Logger
}

func NewKafka(brokers []string, topic string, log *slog.Logger) *Kafka {
	return &Kafka{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			Completion: func(msgs []kafka.Message, err error) {
				if err != nil {
					log.Error("event publish failed", "count", len(msgs), "error", err)
				}
			},
		},
		log: log,
	}
}

func (k *Kafka) Publish(ctx context.Context, key string, e Event) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	value, err := json.Marshal(e)
	if err != nil {
		k.log.Error("event marshal failed", "type", e.Type, "error", err)
		return
	}
	msg := kafka.Message{Key: []byte(key), Value: value, Time: time.Now()}
	// Async writer: WriteMessages enqueues and returns immediately.
	if err := k.w.WriteMessages(ctx, msg); err != nil {
		k.log.Error("event enqueue failed", "type", e.Type, "error", err)
	}
}

func (k *Kafka) Close() error {
	return k.w.Close()
}
