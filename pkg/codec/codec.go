// Package codec provides the slot value encodings supported out of the
// box. Both are text formats, round-trip lossless for strings, and
// preserve array order through a write/read cycle.
package codec

import (
	"fmt"

	"github.com/lembra/lembra/pkg/core"
)

// ByName returns the codec registered under the given format name.
func ByName(name string) (core.Codec, error) {
	switch name {
	case "", "json":
		return JSON{}, nil
	case "yaml", "yml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("unknown codec: %s", name)
	}
}
