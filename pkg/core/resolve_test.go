package core_test

import (
	"reflect"
	"testing"

	"github.com/lembra/lembra/pkg/core"
)

func TestResolve(t *testing.T) {
	tags := []core.Tag{
		{ID: "t-1", Label: "one"},
		{ID: "t-2", Label: "two"},
	}

	t.Run("Resolves In Note Order", func(t *testing.T) {
		notes := []core.RawNote{
			{ID: "n-1", Title: "a", Tags: []string{"t-2", "t-1"}},
		}
		resolved := core.Resolve(notes, tags)

		want := []core.Tag{{ID: "t-2", Label: "two"}, {ID: "t-1", Label: "one"}}
		if !reflect.DeepEqual(resolved[0].Tags, want) {
			t.Errorf("expected %v, got %v", want, resolved[0].Tags)
		}
	})

	t.Run("Drops Dangling IDs Silently", func(t *testing.T) {
		notes := []core.RawNote{
			{ID: "n-1", Tags: []string{"t-1", "gone", "t-2"}},
		}
		resolved := core.Resolve(notes, tags)

		if len(resolved[0].Tags) != 2 {
			t.Fatalf("expected 2 resolved tags, got %v", resolved[0].Tags)
		}
		for _, tag := range resolved[0].Tags {
			if tag.ID == "gone" {
				t.Error("dangling id must never appear in the view")
			}
		}
	})

	t.Run("Empty Collections", func(t *testing.T) {
		if got := core.Resolve(nil, nil); len(got) != 0 {
			t.Errorf("expected empty view, got %v", got)
		}

		resolved := core.Resolve([]core.RawNote{{ID: "n-1"}}, nil)
		if len(resolved) != 1 || len(resolved[0].Tags) != 0 {
			t.Errorf("expected one note with no tags, got %v", resolved)
		}
	})

	t.Run("Duplicate Tag ID Precedence", func(t *testing.T) {
		// AddTag never guards against duplicate ids; resolution pins
		// precedence to the earlier registration.
		dup := []core.Tag{
			{ID: "t-1", Label: "first"},
			{ID: "t-1", Label: "second"},
		}
		notes := []core.RawNote{{ID: "n-1", Tags: []string{"t-1"}}}

		resolved := core.Resolve(notes, dup)
		if got := resolved[0].Tags[0].Label; got != "first" {
			t.Errorf("expected earlier registration to win, got %q", got)
		}
	})

	t.Run("Pure Over Inputs", func(t *testing.T) {
		notes := []core.RawNote{{ID: "n-1", Tags: []string{"t-1"}}}
		core.Resolve(notes, tags)

		if !reflect.DeepEqual(notes[0].Tags, []string{"t-1"}) {
			t.Error("Resolve must not mutate its inputs")
		}
	})
}
