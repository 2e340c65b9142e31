package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/princepatel/folio/internal/application/service"
	"github.com/princepatel/folio/internal/config"
)

const TopicViewEvents = "view.events"

type ViewEventPayload struct {
	DocumentType string    `json:"document_type"`
	Slug         string    `json:"slug"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type KafkaViewPublisher struct {
	writer *kafka.Writer
}

func NewKafkaViewPublisher(cfg config.Config) (*KafkaViewPublisher, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicViewEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka view producer successfully.")
	return &KafkaViewPublisher{writer: writer}, nil
}

var _ service.ViewPublisher = (*KafkaViewPublisher)(nil)

func (p *KafkaViewPublisher) PublishView(ctx context.Context, documentType, slug string) error {
	payload := ViewEventPayload{
		DocumentType: documentType,
		Slug:         slug,
		OccurredAt:   time.Now().UTC(),
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot encode view event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%s:%s", documentType, slug)),
		Value: value,
	})
}

func (p *KafkaViewPublisher) Close() {
	if p.writer != nil {
		p.writer.Close()
	}
	fmt.Println("Closed Kafka view producer")
}
