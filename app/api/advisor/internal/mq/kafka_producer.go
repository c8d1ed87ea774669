package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"FinNavi/app/api/advisor/internal/syncer"
)

// CatalogEventProducer publishes catalog sync events to Kafka. With no
// brokers or topic configured it degrades to a no-op so dev setups without
// Kafka keep working.
type CatalogEventProducer struct {
	writer *kafka.Writer
}

func NewCatalogEventProducer(brokers []string, topic string) *CatalogEventProducer {
	if len(brokers) == 0 || topic == "" {
		return &CatalogEventProducer{}
	}
	return &CatalogEventProducer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *CatalogEventProducer) PublishCatalogSynced(ctx context.Context, evt syncer.CatalogSyncedEvent) error {
	if p == nil || p.writer == nil {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{Value: body})
}

func (p *CatalogEventProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
