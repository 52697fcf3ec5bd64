package effect

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteDocument writes an effect instance to a YAML file
func WriteDocument(doc *Document, path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", doc.Service, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write document %s: %w", path, err)
	}
	return nil
}

// ReadDocument reads an effect instance from a YAML file
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}

	return &doc, nil
}
