// Package kafka publishes order-changed events to downstream consumers.
package kafka

import (
	"context"
	"encoding/json"

	"fulfillment/internal/core/ports"

	kafkaGo "github.com/segmentio/kafka-go"
)

// OrderEventPublisher implements OrderEventPublisher on a kafka topic.
// Messages are keyed by order ID so all events of one order land on the same
// partition and stay ordered.
type OrderEventPublisher struct {
	writer *kafkaGo.Writer
}

// NewOrderEventPublisher creates a publisher writing to the given brokers and
// topic.
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafkaGo.Writer{
			Addr:     kafkaGo.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafkaGo.LeastBytes{},
		},
	}
}

// PublishOrderChanged writes one order-changed event.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
