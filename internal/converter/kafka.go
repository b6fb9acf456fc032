package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/you-humble/parts-inventory/internal/model"
)

type inventoryEventRecord struct {
	Type       string    `json:"type"`
	Entity     string    `json:"entity"`
	EntityID   int       `json:"entity_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) InventoryEventKey(e model.InventoryEvent) []byte {
	return fmt.Appendf(nil, "%s:%d", e.Entity, e.EntityID)
}

func (c *kafkaConverter) InventoryEventToPayload(e model.InventoryEvent) ([]byte, error) {
	return json.Marshal(inventoryEventRecord{
		Type:       string(e.Type),
		Entity:     string(e.Entity),
		EntityID:   e.EntityID,
		Name:       e.Name,
		OccurredAt: e.OccurredAt,
	})
}
