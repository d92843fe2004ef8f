package index

import (
	"time"

	"github.com/lumawell/kbsearch/chunk"
	"github.com/lumawell/kbsearch/lexical"
)

// Config holds the corpus and build tunables of the index service.
// Zero values are replaced by defaults at construction; nothing reads
// the environment.
type Config struct {
	// KBDir is the knowledge-base directory scanned for *.md files.
	// A missing directory is not an error: the built-in fallback
	// corpus is indexed instead.
	KBDir string

	// ChunkSize is the fragment size limit in runes. Default 900.
	ChunkSize int
	// ChunkOverlap is the contextual overlap length in runes.
	// Default 120; a negative value disables overlap.
	ChunkOverlap int

	// GramMin and GramMax bound the lexical character n-gram range.
	// Defaults 2 and 4.
	GramMin int
	GramMax int
	// MaxDocFreq is the lexical document frequency cutoff. Default 0.95.
	MaxDocFreq float64

	// EmbedBatchSize is the number of passages embedded per request.
	// Default 32.
	EmbedBatchSize int

	// MaxRetries and RetryDelay control retrying of failed embedding
	// batches. Defaults 3 and 1s.
	MaxRetries int
	RetryDelay time.Duration

	// ModelID is the embedding model identifier; it participates in
	// the index fingerprint.
	ModelID string
}

// normalized returns a copy with defaults applied.
func (c Config) normalized() Config {
	if c.KBDir == "" {
		c.KBDir = "kb"
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = chunk.DefaultSize
	}
	if c.ChunkOverlap < 0 {
		c.ChunkOverlap = 0
	} else if c.ChunkOverlap == 0 {
		c.ChunkOverlap = chunk.DefaultOverlap
	}
	if c.GramMin <= 0 {
		c.GramMin = lexical.DefaultMinGram
	}
	if c.GramMax < c.GramMin {
		c.GramMax = lexical.DefaultMaxGram
	}
	if c.MaxDocFreq <= 0 || c.MaxDocFreq > 1 {
		c.MaxDocFreq = lexical.DefaultMaxDocFreq
	}
	if c.EmbedBatchSize <= 0 {
		c.EmbedBatchSize = 32
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = time.Second
	}
	return c
}
