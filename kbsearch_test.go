package kbsearch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumawell/kbsearch/ai/mock"
	"github.com/lumawell/kbsearch/core"
	"github.com/lumawell/kbsearch/storage/badger"
)

func newTestEngine(t *testing.T, cfg *Config) (*Engine, *mock.MockProvider) {
	t.Helper()

	store, _, err := badger.NewMemorySnapshotStore()
	require.NoError(t, err)

	provider := mock.NewMockProvider()
	engine, err := NewEngine(context.Background(), cfg,
		WithProvider(provider),
		WithStore(store),
	)
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })

	return engine, provider
}

func TestNewEngine_EmptyKnowledgeBase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KBDir = filepath.Join(t.TempDir(), "missing-kb")
	engine, _ := newTestEngine(t, cfg)

	ix, err := engine.Index()
	require.NoError(t, err)
	assert.Equal(t, 3, ix.Len())
}

func TestEngine_SearchEndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "diet-basics.md"),
		[]byte("Daily protein intake of 1.6 to 2.2 g per kg supports fat loss and recovery."),
		0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "skincare-routine.md"),
		[]byte("Broad-spectrum sunscreen every morning; reapply every two hours outside."),
		0o644))

	cfg := DefaultConfig()
	cfg.KBDir = dir
	engine, _ := newTestEngine(t, cfg)

	results, err := engine.Search(context.Background(), "daily protein intake for fat loss", 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, core.TopicDiet, results[0].Fragment.Topic)
	assert.Equal(t, 1, results[0].Rank)
	for _, result := range results {
		assert.GreaterOrEqual(t, result.ScoreHybrid, float32(0))
		assert.LessOrEqual(t, result.ScoreHybrid, float32(1))
	}
}

func TestEngine_RebuildAfterCorpusChange(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "sleep-hygiene.md"),
		[]byte("Keep a consistent wake time."),
		0o644))

	cfg := DefaultConfig()
	cfg.KBDir = dir
	engine, _ := newTestEngine(t, cfg)

	before, err := engine.Index()
	require.NoError(t, err)
	assert.Equal(t, 1, before.Len())

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "diet-basics.md"),
		[]byte("Daily protein intake matters."),
		0o644))
	require.NoError(t, engine.Rebuild(context.Background()))

	after, err := engine.Index()
	require.NoError(t, err)
	assert.Equal(t, 2, after.Len())
	assert.NotEqual(t, before.Snapshot.Fingerprint, after.Snapshot.Fingerprint)
}

func TestEngine_Close(t *testing.T) {
	store, _, err := badger.NewMemorySnapshotStore()
	require.NoError(t, err)

	provider := mock.NewMockProvider()
	cfg := DefaultConfig()
	cfg.KBDir = filepath.Join(t.TempDir(), "missing-kb")

	engine, err := NewEngine(context.Background(), cfg,
		WithProvider(provider),
		WithStore(store),
	)
	require.NoError(t, err)

	require.NoError(t, engine.Close())
	assert.True(t, provider.Closed())
}

func TestEngine_NilConfigUsesDefaults(t *testing.T) {
	store, _, err := badger.NewMemorySnapshotStore()
	require.NoError(t, err)

	// The default kb dir is relative; run from a temp dir so an actual
	// ./kb in the repo cannot leak into the test.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	engine, err := NewEngine(context.Background(), nil,
		WithProvider(mock.NewMockProvider()),
		WithStore(store),
	)
	require.NoError(t, err)
	defer engine.Close()

	ix, err := engine.Index()
	require.NoError(t, err)
	assert.Equal(t, 3, ix.Len())
}
