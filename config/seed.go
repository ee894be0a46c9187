package config

import (
	_ "embed"

	"github.com/pelletier/go-toml/v2"
)

//go:embed seed.toml
var seedCatalog []byte

// SeedSweet is one default catalog entry from the embedded seed file.
type SeedSweet struct {
	Name     string  `toml:"name"`
	Category string  `toml:"category"`
	Price    float64 `toml:"price"`
	Quantity int     `toml:"quantity"`
}

type seedFile struct {
	Sweets []SeedSweet `toml:"sweets"`
}

// GetSeedSweets parses the embedded default catalog.
func GetSeedSweets() ([]SeedSweet, error) {
	var f seedFile
	if err := toml.Unmarshal(seedCatalog, &f); err != nil {
		return nil, err
	}
	return f.Sweets, nil
}
