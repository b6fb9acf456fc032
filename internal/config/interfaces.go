package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Inventory interface {
	Seed() bool
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	InventoryEventsTopic() string
	InventoryEventsProducerConfig() *sarama.Config
}
