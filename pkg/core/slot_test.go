package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lembra/lembra/pkg/codec"
	"github.com/lembra/lembra/pkg/core"
)

func TestSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("Absent Key Yields Default", func(t *testing.T) {
		slot, err := core.NewSlot(newMockStore(), codec.JSON{}, "EMPTY", func() []string {
			return []string{"fallback"}
		})
		if err != nil {
			t.Fatalf("NewSlot failed: %v", err)
		}

		v, err := slot.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(v) != 1 || v[0] != "fallback" {
			t.Errorf("expected default value, got %v", v)
		}
	})

	t.Run("Default Supplier Is Lazy", func(t *testing.T) {
		store := newMockStore()
		store.slots["FULL"] = []byte(`["stored"]`)

		called := false
		slot, _ := core.NewSlot(store, codec.JSON{}, "FULL", func() []string {
			called = true
			return nil
		})

		v, err := slot.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if called {
			t.Error("default supplier must not run when a value exists")
		}
		if len(v) != 1 || v[0] != "stored" {
			t.Errorf("expected stored value, got %v", v)
		}
	})

	t.Run("Corrupt Value Propagates", func(t *testing.T) {
		store := newMockStore()
		store.slots["BAD"] = []byte(`{not json`)

		slot, _ := core.NewSlot(store, codec.JSON{}, "BAD", func() []string {
			return []string{"default"}
		})

		_, err := slot.Load(ctx)
		if err == nil {
			t.Fatal("expected corruption to surface, not a silent default")
		}
		var ce *core.CorruptError
		if !errors.As(err, &ce) {
			t.Fatalf("expected *CorruptError, got %T: %v", err, err)
		}
		if ce.Key != "BAD" {
			t.Errorf("expected key BAD, got %q", ce.Key)
		}
		if !core.IsCorrupt(err) {
			t.Error("IsCorrupt should report true")
		}
	})

	t.Run("Save Replaces Whole Value", func(t *testing.T) {
		store := newMockStore()
		slot, _ := core.NewSlot(store, codec.JSON{}, "SLOT", func() []int { return nil })

		if err := slot.Save(ctx, []int{1, 2, 3}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := slot.Save(ctx, []int{9}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		v, err := slot.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(v) != 1 || v[0] != 9 {
			t.Errorf("expected last write to win wholesale, got %v", v)
		}
	})

	t.Run("Rejects Empty Key", func(t *testing.T) {
		_, err := core.NewSlot(newMockStore(), codec.JSON{}, "", func() int { return 0 })
		if !errors.Is(err, core.ErrEmptyKey) {
			t.Errorf("expected ErrEmptyKey, got %v", err)
		}
	})
}
