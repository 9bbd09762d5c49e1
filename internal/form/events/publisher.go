package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/twmb/franz-go/pkg/kgo"
)

const headerEventType = "event_type"

// KafkaPublisher produces AnswerSubmitted records to a single topic and waits for
// the broker to acknowledge each one.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

func NewKafkaPublisher(client *kgo.Client, topic string, logger *slog.Logger) *KafkaPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaPublisher{client: client, topic: topic, logger: logger}
}

func (p *KafkaPublisher) PublishAnswerSubmitted(ctx context.Context, e AnswerSubmitted) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", e.Type, err)
	}
	rec := &kgo.Record{
		Topic:   p.topic,
		Key:     e.Key(),
		Value:   value,
		Headers: []kgo.RecordHeader{{Key: headerEventType, Value: []byte(e.Type)}},
	}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce %s: %w", e.Type, err)
	}
	p.logger.DebugContext(ctx, "answer event published",
		"type", e.Type,
		"form_id", e.FormID,
		"target_id", e.TargetID,
	)
	return nil
}

// LogPublisher only logs events. The server uses it when no broker is configured.
type LogPublisher struct {
	Logger *slog.Logger
}

func (p LogPublisher) PublishAnswerSubmitted(ctx context.Context, e AnswerSubmitted) error {
	p.Logger.InfoContext(ctx, "answer submitted",
		"type", e.Type,
		"form_id", e.FormID,
		"target_id", e.TargetID,
		"replaced", e.Replaced,
	)
	return nil
}

// Recorder keeps published events in memory for tests.
type Recorder struct {
	mu     sync.Mutex
	events []AnswerSubmitted
}

func (r *Recorder) PublishAnswerSubmitted(_ context.Context, e AnswerSubmitted) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []AnswerSubmitted {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]AnswerSubmitted(nil), r.events...)
}
