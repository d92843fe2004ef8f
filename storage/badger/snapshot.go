// Copyright 2025 Lumawell
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/lumawell/kbsearch/core"
	"github.com/lumawell/kbsearch/storage"
)

// SnapshotStore implements storage.SnapshotStore on BadgerDB.
type SnapshotStore struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore opens a snapshot store at the given cache path.
//
// Returns storage.SnapshotStore interface to enforce abstraction.
func NewSnapshotStore(cachePath string) (storage.SnapshotStore, error) {
	backend, err := OpenBackend(cachePath, false)
	if err != nil {
		return nil, err
	}
	return newSnapshotStore(backend), nil
}

// newSnapshotStore wraps an already open backend; used by tests and by
// NewMemorySnapshotStore.
func newSnapshotStore(backend *Backend) *SnapshotStore {
	return &SnapshotStore{
		backend: backend,
		logger:  slog.Default().With("component", "snapshot-store"),
	}
}

// Load retrieves the persisted snapshot. Missing or undecodable entries
// both surface as storage.ErrNotFound so the caller falls back to a
// rebuild instead of failing.
func (s *SnapshotStore) Load(ctx context.Context) (*core.Snapshot, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var snapshot *core.Snapshot
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotKey())
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, decodeErr := storage.UnmarshalSnapshot(val)
			if decodeErr != nil {
				s.logger.Warn("stored snapshot is undecodable, treating as missing", "err", decodeErr)
				return storage.ErrNotFound
			}
			snapshot = decoded
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Save persists the snapshot, replacing any previous one.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *core.Snapshot) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if err := core.ValidateSnapshot(snapshot); err != nil {
		return err
	}

	value := storage.MarshalSnapshot(snapshot)
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSnapshotKey(), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close closes the underlying backend.
func (s *SnapshotStore) Close() error {
	return s.backend.Close()
}
