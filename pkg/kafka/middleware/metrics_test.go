package kafka_middleware

import (
	"context"
	"errors"
	"testing"

	"studio/pkg/kafka"
)

func TestMetrics_ProducerMiddleware(t *testing.T) {
	m := NewMetrics()
	mw := m.ProducerMiddleware()
	ok := func(ctx context.Context, msg kafka.Message) error { return nil }
	fail := func(ctx context.Context, msg kafka.Message) error { return errors.New("broker down") }

	_ = mw(context.Background(), kafka.Message{Key: "a"}, ok)
	_ = mw(context.Background(), kafka.Message{Key: "b"}, ok)
	if err := mw(context.Background(), kafka.Message{Key: "c"}, fail); err == nil {
		t.Fatal("expected the handler error to be returned")
	}

	if got := m.MessagesPublished.Load(); got != 2 {
		t.Errorf("published = %d, want 2", got)
	}
	if got := m.MessagesPublishedFailed.Load(); got != 1 {
		t.Errorf("failed = %d, want 1", got)
	}
}

func TestMetrics_ConsumerMiddleware(t *testing.T) {
	m := NewMetrics()
	mw := m.ConsumerMiddleware()

	_ = mw(context.Background(), kafka.Message{}, func(ctx context.Context, msg kafka.Message) error {
		return errors.New("bad payload")
	})

	if got := m.MessagesConsumedFailed.Load(); got != 1 {
		t.Errorf("consume failed = %d, want 1", got)
	}

	m.Reset()
	if m.MessagesConsumedFailed.Load() != 0 || m.GetAvgConsumeDuration() != 0 {
		t.Error("Reset should zero every counter")
	}
}
