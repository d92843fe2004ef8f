package storage

import (
	"context"

	"github.com/lumawell/kbsearch/core"
)

// SnapshotStore persists the built index snapshot between process runs.
// Implementations must be thread-safe within a process; no cross-process
// write locking is provided (single-writer deployment model).
type SnapshotStore interface {
	// Load retrieves the persisted snapshot.
	// Returns ErrNotFound when no snapshot exists or the stored bytes
	// cannot be decoded; callers treat either as a cache miss.
	Load(ctx context.Context) (*core.Snapshot, error)

	// Save persists the snapshot, replacing any previous one.
	// The snapshot format is internal and carries no cross-version
	// compatibility promise; the fingerprint is the only recognized
	// invalidation signal.
	Save(ctx context.Context, snapshot *core.Snapshot) error

	// Close closes the storage backend and releases resources.
	Close() error
}
