package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lembra/lembra/internal/platform"
	"github.com/lembra/lembra/pkg/adapters/memory"
	"github.com/lembra/lembra/pkg/core"
)

func TestOpen(t *testing.T) {
	t.Run("Creates State Files on First Mutation", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "state")

		repo, err := platform.Open(dir)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}

		if err := repo.CreateNote(context.Background(), "n", "", nil); err != nil {
			t.Fatalf("CreateNote failed: %v", err)
		}

		if _, err := os.Stat(filepath.Join(dir, "NOTES.json")); err != nil {
			t.Errorf("expected NOTES.json: %v", err)
		}
	})

	t.Run("Fails on Missing Dir With MustExist", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "missing")

		if _, err := platform.Open(dir, platform.WithMustExist(true)); err == nil {
			t.Error("expected Open to fail on missing state directory")
		}
	})

	t.Run("Injected Store Skips Filesystem", func(t *testing.T) {
		store := memory.NewStore()

		repo, err := platform.Open("", platform.WithStore(store))
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}

		if err := repo.AddTag(context.Background(), core.Tag{ID: "t-1", Label: "one"}); err != nil {
			t.Fatalf("AddTag failed: %v", err)
		}
		if store.Len() != 1 {
			t.Errorf("expected the injected store to receive the write, got %d slots", store.Len())
		}
	})

	t.Run("Yaml Format Writes Yaml Slots", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "state")

		repo, err := platform.Open(dir, platform.WithFormat("yaml"))
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		repo.CreateNote(context.Background(), "n", "", nil)

		if _, err := os.Stat(filepath.Join(dir, "NOTES.yaml")); err != nil {
			t.Errorf("expected NOTES.yaml: %v", err)
		}
	})

	t.Run("Unknown Format Fails", func(t *testing.T) {
		if _, err := platform.Open(t.TempDir(), platform.WithFormat("toml")); err == nil {
			t.Error("expected error for unknown format")
		}
	})

	t.Run("Corrupt Slot Surfaces Immediately", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "NOTES.json"), []byte("{broken"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := platform.Open(dir)
		if err == nil {
			t.Fatal("expected corrupt state to fail Open")
		}
		if !core.IsCorrupt(err) {
			t.Errorf("expected CorruptError, got %v", err)
		}
	})

	t.Run("Custom ID Generator", func(t *testing.T) {
		repo, err := platform.Open("",
			platform.WithStore(memory.NewStore()),
			platform.WithIDGenerator(func() string { return "fixed-id" }),
		)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}

		repo.CreateNote(context.Background(), "n", "", nil)
		if got := repo.Notes()[0].ID; got != "fixed-id" {
			t.Errorf("expected injected id, got %q", got)
		}
	})
}

func TestNewStore(t *testing.T) {
	t.Run("Builds Watchable FS Store", func(t *testing.T) {
		store, err := platform.NewStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewStore failed: %v", err)
		}
		if _, ok := store.(core.WatchableStore); !ok {
			t.Error("filesystem store should support watching")
		}
	})

	t.Run("Returns Injected Store", func(t *testing.T) {
		injected := memory.NewStore()
		store, err := platform.NewStore("", platform.WithStore(injected))
		if err != nil {
			t.Fatalf("NewStore failed: %v", err)
		}
		if store != core.Store(injected) {
			t.Error("expected the injected store back")
		}
	})

	t.Run("Rejects Empty Dir", func(t *testing.T) {
		if _, err := platform.NewStore(""); err == nil {
			t.Error("expected error for empty state directory")
		}
	})
}
