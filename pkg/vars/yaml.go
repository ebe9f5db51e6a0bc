package vars

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads a YAML mapping of strings, bools and string lists into a
// Binding. An empty document yields an empty Binding.
func DecodeYAML(r io.Reader) (Binding, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return Binding{}, nil
		}
		return Binding{}, fmt.Errorf("vars: decode yaml: %w", err)
	}
	return FromMap(raw)
}
