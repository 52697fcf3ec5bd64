package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Metadata is a descriptor resource listing the animatable parameters of
// several effect kinds.
type Metadata struct {
	Version string       `yaml:"version"`
	Effects []EffectMeta `yaml:"effects"`
}

type EffectMeta struct {
	Kind       string       `yaml:"kind"`
	Parameters []Descriptor `yaml:"parameters"`
}

// DescribeParameters implements MetadataSource.
func (m *Metadata) DescribeParameters(kind string) ([]Descriptor, error) {
	for _, e := range m.Effects {
		if e.Kind == kind {
			return e.Parameters, nil
		}
	}
	return nil, ErrUnknownKind
}

// ReadMetadata reads a metadata resource from a YAML file
func ReadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", path, err)
	}

	return &meta, nil
}

// WriteMetadata writes a metadata resource to a YAML file
func WriteMetadata(meta *Metadata, path string) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
