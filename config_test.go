package kbsearch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumawell/kbsearch/search"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "kb", cfg.KBDir)
	assert.Equal(t, ".kbsearch-cache", cfg.CachePath)
	assert.Equal(t, 900, cfg.Chunk.Size)
	assert.Equal(t, 120, cfg.Chunk.Overlap)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Embedding.Host)
	assert.Equal(t, "bge-m3", cfg.Embedding.Model)
	assert.Equal(t, 2, cfg.Lexical.GramMin)
	assert.Equal(t, 4, cfg.Lexical.GramMax)
	assert.Equal(t, 0.95, cfg.Lexical.MaxDocFreq)
	assert.Equal(t, float32(search.DefaultMinScore), cfg.Scoring.MinScore)
	assert.Equal(t, float32(search.DefaultEmbedWeight), cfg.Scoring.EmbedWeight)
	assert.Equal(t, float32(search.DefaultLexicalWeight), cfg.Scoring.LexicalWeight)
	assert.Equal(t, 32, cfg.Build.EmbedBatchSize)
	assert.Equal(t, 3, cfg.Build.MaxRetries)
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kbsearch.yaml")
	content := `
kb_dir: /data/kb
embedding:
  model: bge-large
scoring:
  min_score: 0.25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/kb", cfg.KBDir)
	assert.Equal(t, "bge-large", cfg.Embedding.Model)
	assert.Equal(t, float32(0.25), cfg.Scoring.MinScore)

	// Unset fields fall back to defaults.
	assert.Equal(t, ".kbsearch-cache", cfg.CachePath)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Embedding.Host)
	assert.Equal(t, 900, cfg.Chunk.Size)
}

func TestLoadConfig_NegativeMinScoreDisablesThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kbsearch.yaml")
	content := `
scoring:
  min_score: -1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0), cfg.Scoring.MinScore)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kbsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kb_dir: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_IndexConfigMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KBDir = "/data/kb"
	cfg.Chunk.Size = 500
	cfg.Embedding.Model = "bge-large"

	ic := cfg.indexConfig()
	assert.Equal(t, "/data/kb", ic.KBDir)
	assert.Equal(t, 500, ic.ChunkSize)
	assert.Equal(t, "bge-large", ic.ModelID)
	assert.Equal(t, 0.95, ic.MaxDocFreq)
}
