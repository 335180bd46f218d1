package codec

import (
	"encoding/json"
	"fmt"
)

// JSON is the default slot codec.
type JSON struct{}

func (JSON) Ext() string { return ".json" }

func (JSON) Encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return append(data, '\n'), nil
}

func (JSON) Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}
