package memory_test

import (
	"context"
	"testing"

	"github.com/lembra/lembra/pkg/adapters/memory"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	t.Run("Initialize Is a No-Op", func(t *testing.T) {
		if err := store.Initialize(ctx); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}
	})

	t.Run("Absent Key", func(t *testing.T) {
		data, ok, err := store.Load(ctx, "NOTES")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if ok || data != nil {
			t.Errorf("expected absent slot, got ok=%v data=%q", ok, data)
		}
	})

	t.Run("Round Trip", func(t *testing.T) {
		if err := store.Save(ctx, "NOTES", []byte("payload")); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		data, ok, err := store.Load(ctx, "NOTES")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !ok || string(data) != "payload" {
			t.Errorf("expected stored payload, got ok=%v data=%q", ok, data)
		}
		if store.Len() != 1 {
			t.Errorf("expected 1 slot, got %d", store.Len())
		}
	})

	t.Run("Stored Value Is Isolated", func(t *testing.T) {
		in := []byte("original")
		store.Save(ctx, "ISO", in)
		in[0] = 'X'

		out, _, _ := store.Load(ctx, "ISO")
		if string(out) != "original" {
			t.Error("store must copy values on write")
		}

		out[0] = 'Y'
		again, _, _ := store.Load(ctx, "ISO")
		if string(again) != "original" {
			t.Error("store must copy values on read")
		}
	})
}
