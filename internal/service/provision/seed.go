package provision

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/healthscan-backend/internal/adapter/snapshot"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Products []snapshot.Record `yaml:"products"`
}

// SeedRecords returns the embedded example catalog.
func SeedRecords() ([]snapshot.Record, error) {
	var f seedFile
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return f.Products, nil
}
