// Package lembra is the Composition Root for the lembra note store.
//
// It connects the core business logic (Domain Layer) with the
// infrastructure adapters (Persistence Layer) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// lembra treats a pair of key-value slots as a tiny note database: one
// slot of raw notes, one slot of tags, and a derived read-only view that
// joins them. State lives wherever a core.Store puts it; the default
// adapter keeps one file per slot in a local state directory.
//
// Features:
//
//   - **Hexagonal Architecture**: the repository is isolated from
//     persistence details behind the core.Store port.
//   - **Whole-value persistence**: every mutation serializes and replaces
//     the full collection, synchronously and atomically.
//   - **Derived views**: resolved notes are recomputed from the backing
//     collections on every read, never cached stale.
//   - **Pluggable codecs**: JSON by default, YAML for hand-edited state.
//   - **Watching**: the filesystem store observes external changes to
//     the state directory via fsnotify.
//
// Usage:
//
//	repo, err := lembra.Open(".lembra",
//		lembra.WithLogger(logger),
//	)
//
//	// Create a note
//	err = repo.CreateNote(ctx, "Hello", "World", nil)
package lembra
