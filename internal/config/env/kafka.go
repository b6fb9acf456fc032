package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled              bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers              []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	InventoryEventsTopic string   `env:"INVENTORY_EVENTS_TOPIC_NAME" envDefault:"inventory.events"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool                { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string            { return cfg.raw.Brokers }
func (cfg *kafka) InventoryEventsTopic() string { return cfg.raw.InventoryEventsTopic }

func (cfg *kafka) InventoryEventsProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
