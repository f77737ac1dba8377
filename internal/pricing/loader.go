package pricing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Renal37/laundry-service/internal/models"
)

type rateTableFile struct {
	IronRatePerKg *float64          `yaml:"iron_rate_per_kg"`
	Tiers         []models.RateTier `yaml:"tiers"`
}

// LoadRateTable reads a YAML rate table. An empty path selects the default
// ladder.
func LoadRateTable(path string) (RateTable, error) {
	if path == "" {
		return DefaultRateTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return RateTable{}, fmt.Errorf("reading rate table %s: %w", path, err)
	}

	table, err := ParseRateTable(data)
	if err != nil {
		return RateTable{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ParseRateTable decodes a YAML document. Unknown keys are rejected so that a
// misspelled field does not silently fall back to a default price.
func ParseRateTable(data []byte) (RateTable, error) {
	var file rateTableFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return RateTable{}, models.NewConfigurationError("parsing yaml: %v", err)
	}

	ironRate := DefaultIronRatePerKg
	if file.IronRatePerKg != nil {
		ironRate = *file.IronRatePerKg
	}

	return NewRateTable(file.Tiers, ironRate)
}
