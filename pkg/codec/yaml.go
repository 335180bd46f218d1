package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML encodes slots as YAML for state directories meant to be hand-edited.
type YAML struct{}

func (YAML) Ext() string { return ".yaml" }

func (YAML) Encode(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return data, nil
}

func (YAML) Decode(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	return nil
}
