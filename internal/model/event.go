package model

import "time"

type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

type EntityKind string

const (
	EntityPart    EntityKind = "part"
	EntityProduct EntityKind = "product"
)

// InventoryEvent describes one committed change to the inventory.
type InventoryEvent struct {
	Type       EventType
	Entity     EntityKind
	EntityID   int
	Name       string
	OccurredAt time.Time
}

func PartEvent(t EventType, p *Part) InventoryEvent {
	return InventoryEvent{
		Type:       t,
		Entity:     EntityPart,
		EntityID:   p.ID(),
		Name:       p.Name,
		OccurredAt: time.Now().UTC(),
	}
}

func ProductEvent(t EventType, p *Product) InventoryEvent {
	return InventoryEvent{
		Type:       t,
		Entity:     EntityProduct,
		EntityID:   p.ID(),
		Name:       p.Name,
		OccurredAt: time.Now().UTC(),
	}
}
