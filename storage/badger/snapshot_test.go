package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumawell/kbsearch/core"
	"github.com/lumawell/kbsearch/storage"
)

func testSnapshot(fingerprint string) *core.Snapshot {
	return &core.Snapshot{
		Fingerprint: fingerprint,
		Fragments: []core.Fragment{
			{
				ID:         core.IDFromContent("Keep a consistent wake time."),
				Text:       "Keep a consistent wake time.",
				Path:       "kb/sleep-hygiene.md",
				FragmentID: "sleep-hygiene.md §1",
				Topic:      core.TopicSleep,
			},
		},
		Dense: [][]float32{{1, 0}},
		Lexical: core.LexicalModel{
			MinGram: 2, MaxGram: 4, MaxDocFreq: 0.95,
			Terms: []string{"ke", "ee"},
			IDF:   []float32{1, 1},
		},
		LexicalRows: []core.SparseVector{
			{Indices: []uint32{0, 1}, Values: []float32{0.7, 0.7}},
		},
	}
}

func TestSnapshotStore_SaveAndLoad(t *testing.T) {
	store, _, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	snapshot := testSnapshot("aaaa111122223333")
	require.NoError(t, store.Save(ctx, snapshot))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)
}

func TestSnapshotStore_LoadMissing(t *testing.T) {
	store, _, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSnapshotStore_SaveReplaces(t *testing.T) {
	store, _, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSnapshot("aaaa111122223333")))
	require.NoError(t, store.Save(ctx, testSnapshot("bbbb444455556666")))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bbbb444455556666", loaded.Fingerprint)
}

func TestSnapshotStore_SaveInvalidSnapshot(t *testing.T) {
	store, _, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	defer store.Close()

	broken := testSnapshot("aaaa111122223333")
	broken.Dense = nil
	err = store.Save(context.Background(), broken)
	assert.ErrorIs(t, err, core.ErrInvalidSnapshot)
}

func TestSnapshotStore_CorruptEntryIsNotFound(t *testing.T) {
	store, backend, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSnapshot("aaaa111122223333")))
	require.NoError(t, CorruptSnapshot(backend))

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSnapshotStore_ClosedStore(t *testing.T) {
	store, _, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Save(context.Background(), testSnapshot("aaaa111122223333"))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
