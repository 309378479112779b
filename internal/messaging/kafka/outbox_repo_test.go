package kafka_test

import (
	"testing"

	"biztime/internal/messaging/kafka"

	"github.com/stretchr/testify/assert"
)

func TestValidateOutboxEvent(t *testing.T) {
	valid := func() *kafka.OutboxEvent {
		return &kafka.OutboxEvent{
			ID:            "7d9c1f0a-0000-0000-0000-000000000001",
			AggregateType: "invoice",
			AggregateID:   "7",
			EventType:     "invoice.created",
			Topic:         "biztime.invoice.lifecycle.v1",
			Payload:       []byte(`{"invoice_id":7}`),
			Status:        kafka.OutboxStatusPending,
		}
	}

	t.Run("Valid event", func(t *testing.T) {
		assert.NoError(t, kafka.ValidateOutboxEvent(valid()))
	})

	t.Run("Missing id", func(t *testing.T) {
		ev := valid()
		ev.ID = ""
		assert.EqualError(t, kafka.ValidateOutboxEvent(ev), "outbox id is required")
	})

	t.Run("Missing topic", func(t *testing.T) {
		ev := valid()
		ev.Topic = ""
		assert.EqualError(t, kafka.ValidateOutboxEvent(ev), "outbox topic is required")
	})

	t.Run("Empty payload", func(t *testing.T) {
		ev := valid()
		ev.Payload = nil
		assert.EqualError(t, kafka.ValidateOutboxEvent(ev), "outbox payload is required")
	})

	t.Run("Unknown status", func(t *testing.T) {
		ev := valid()
		ev.Status = "queued"
		assert.EqualError(t, kafka.ValidateOutboxEvent(ev), "invalid outbox status: queued")
	})
}
