package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/princepatel/folio/adapters/event"
	"github.com/princepatel/folio/adapters/persistence"
	"github.com/princepatel/folio/internal/config"
)

func main() {
	fmt.Println("Starting Folio Analytics Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	// Redis
	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	viewCounter := persistence.NewViewCounter(redisClient)

	// Kafka Consumer
	viewConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicViewEvents,
		GroupID:  "view-counter-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer viewConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicViewEvents)

	ctx := context.Background()
	for {
		msg, err := viewConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.ViewEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(viewConsumer, msg)
			continue
		}

		count, err := viewCounter.Increment(ctx, payload.DocumentType, payload.Slug)
		if err != nil {
			log.Printf("ERROR: Failed to count view for %s/%s: %v", payload.DocumentType, payload.Slug, err)
			continue
		}

		log.Printf("Counted view: [%s/%s] total=%d", payload.DocumentType, payload.Slug, count)
		commitMessage(viewConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
