package invproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/platform/kafka"
)

type Converter interface {
	InventoryEventKey(e model.InventoryEvent) []byte
	InventoryEventToPayload(e model.InventoryEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewInventoryProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) Send(ctx context.Context, event model.InventoryEvent) error {
	payload, err := s.conv.InventoryEventToPayload(event)
	if err != nil {
		return fmt.Errorf("converter inventory_event_to_payload error: %w", err)
	}

	headers := map[string]string{"event_type": string(event.Type)}
	if err := s.producer.Send(ctx, s.conv.InventoryEventKey(event), payload, headers); err != nil {
		return fmt.Errorf("producer to inventory events topic error: %w", err)
	}

	return nil
}

// Nop drops every event. Used when Kafka is disabled.
type Nop struct{}

func (Nop) Send(context.Context, model.InventoryEvent) error { return nil }
