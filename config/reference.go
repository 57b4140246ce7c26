package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vision-nav/internal/domain/entity"
)

// ReferenceOverrides дополнения справочника из YAML-файла
type ReferenceOverrides struct {
	Heights  map[string]float64 `yaml:"heights"`
	Excluded []string           `yaml:"excluded"`
	Surfaces []string           `yaml:"surfaces"`
}

// LoadReferenceTables возвращает справочник по умолчанию, дополненный файлом path (если задан)
func LoadReferenceTables(path string) (*entity.ReferenceTables, error) {
	tables := entity.DefaultReferenceTables()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference tables: %w", err)
	}

	var overrides ReferenceOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse reference tables: %w", err)
	}
	for class, h := range overrides.Heights {
		if h <= 0 {
			return nil, fmt.Errorf("reference height of %q must be positive", class)
		}
	}

	return tables.Merge(overrides.Heights, overrides.Excluded, overrides.Surfaces), nil
}
