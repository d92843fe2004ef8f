package badger

import (
	"github.com/dgraph-io/badger/v4"

	"github.com/lumawell/kbsearch/storage"
)

// NewMemorySnapshotStore creates a snapshot store backed by an
// in-memory BadgerDB. Intended for tests.
func NewMemorySnapshotStore() (storage.SnapshotStore, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}
	return newSnapshotStore(backend), backend, nil
}

// CorruptSnapshot overwrites the stored snapshot with undecodable
// bytes. Intended for tests exercising the cache-miss fallback.
func CorruptSnapshot(backend *Backend) error {
	return backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSnapshotKey(), []byte{0xff, 0x00, 0xba, 0xad}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
