package storage

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"estate-listings/models"
)

//go:embed seed/mockdata.yaml
var embeddedDataset []byte

// Dataset is the on-disk shape of a dataset file: the raw listing rows plus
// the static site content. JSON files parse as well since YAML is a superset.
type Dataset struct {
	Listings       []*models.RawListing `yaml:"listings"`
	models.Content `yaml:",inline"`
}

// ParseDataset decodes a YAML or JSON document.
func ParseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	return &ds, nil
}

// LoadDataset reads the dataset file at path.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %q: %w", path, err)
	}
	ds, err := ParseDataset(data)
	if err != nil {
		return nil, fmt.Errorf("dataset: %q: %w", path, err)
	}
	return ds, nil
}

// LoadEmbedded returns the demo dataset compiled into the binary.
func LoadEmbedded() (*Dataset, error) {
	return ParseDataset(embeddedDataset)
}
