package codec_test

import (
	"reflect"
	"testing"

	"github.com/lembra/lembra/pkg/codec"
	"github.com/lembra/lembra/pkg/core"
)

func roundTripFixture() []core.RawNote {
	return []core.RawNote{
		{ID: "n-1", Title: "first", Text: "with\nnewlines and \"quotes\"", Tags: []string{"t-2", "t-1"}},
		{ID: "n-2", Title: "", Text: "", Tags: []string{"t-1"}},
		{ID: "n-3", Title: "acentuação", Text: "ünïcôde ✓", Tags: []string{"t-1"}},
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	codecs := map[string]core.Codec{
		"json": codec.JSON{},
		"yaml": codec.YAML{},
	}

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			in := roundTripFixture()

			data, err := c.Encode(in)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			var out []core.RawNote
			if err := c.Decode(data, &out); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			// Strings must survive losslessly and order must hold.
			if !reflect.DeepEqual(in, out) {
				t.Errorf("round trip diverged:\n in: %+v\nout: %+v", in, out)
			}
		})
	}
}

func TestByName(t *testing.T) {
	t.Run("Defaults To JSON", func(t *testing.T) {
		c, err := codec.ByName("")
		if err != nil {
			t.Fatalf("ByName failed: %v", err)
		}
		if c.Ext() != ".json" {
			t.Errorf("expected .json, got %s", c.Ext())
		}
	})

	t.Run("Yaml Aliases", func(t *testing.T) {
		for _, name := range []string{"yaml", "yml"} {
			c, err := codec.ByName(name)
			if err != nil {
				t.Fatalf("ByName(%q) failed: %v", name, err)
			}
			if c.Ext() != ".yaml" {
				t.Errorf("expected .yaml, got %s", c.Ext())
			}
		}
	})

	t.Run("Unknown Name Fails", func(t *testing.T) {
		if _, err := codec.ByName("toml"); err == nil {
			t.Error("expected error for unknown codec")
		}
	})
}
