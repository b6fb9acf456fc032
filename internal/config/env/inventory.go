package envconfig

import "github.com/caarlos0/env/v11"

type inventoryEnv struct {
	// Seed fills the empty store with sample parts and products on start.
	Seed bool `env:"INVENTORY_SEED" envDefault:"false"`
}

type inventory struct {
	raw inventoryEnv
}

func NewInventoryConfig() (*inventory, error) {
	var raw inventoryEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &inventory{raw: raw}, nil
}

func (cfg *inventory) Seed() bool { return cfg.raw.Seed }
