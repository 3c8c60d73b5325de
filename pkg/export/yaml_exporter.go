package export

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLExporter renders values as YAML documents.
type YAMLExporter struct{}

// NewYAMLExporter constructs a YAML exporter.
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Render encodes v with two-space indentation. v must not contain cycles.
func (e *YAMLExporter) Render(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close yaml encoder: %w", err)
	}
	return buf.Bytes(), nil
}
