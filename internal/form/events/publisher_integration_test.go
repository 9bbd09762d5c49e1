//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"festa/internal/form/events"
	"festa/internal/platform/kafka"
	id "festa/pkg/domain"
	"festa/pkg/testutil/containers"
)

type KafkaPublisherSuite struct {
	suite.Suite
	brokers []string
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	s.brokers = containers.GetManager().GetRedpanda(s.T()).Brokers
}

func (s *KafkaPublisherSuite) TestPublishesKeyedRecord() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	topic := "answers-" + uuid.NewString()

	producer, err := kafka.NewProducer(s.brokers)
	s.Require().NoError(err)
	defer producer.Close()
	s.Require().NoError(kafka.EnsureTopic(ctx, producer, topic, 3, 1, slog.Default()))
	s.Require().NoError(kafka.EnsureTopic(ctx, producer, topic, 3, 1, slog.Default()), "second call is a no-op")

	event := events.AnswerSubmitted{
		Type:        events.EventFormAnswerSubmitted,
		AnswerID:    id.FormAnswerID(uuid.New()),
		FormID:      uuid.NewString(),
		TargetID:    uuid.NewString(),
		AuthorID:    id.UserID(uuid.New()),
		SubmittedAt: time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC),
	}
	pub := events.NewKafkaPublisher(producer, topic, slog.Default())
	s.Require().NoError(pub.PublishAnswerSubmitted(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollRecords(ctx, 1)
	s.Require().NoError(fetches.Err())
	records := fetches.Records()
	s.Require().Len(records, 1)

	rec := records[0]
	s.Equal(event.Key(), rec.Key)
	s.Require().Len(rec.Headers, 1)
	s.Equal("form_answer.submitted", string(rec.Headers[0].Value))

	var got events.AnswerSubmitted
	s.Require().NoError(json.Unmarshal(rec.Value, &got))
	s.Equal(event, got)
}
