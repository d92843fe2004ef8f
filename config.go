package kbsearch

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumawell/kbsearch/ai"
	"github.com/lumawell/kbsearch/index"
	"github.com/lumawell/kbsearch/search"
)

// Config is the complete engine configuration: every tunable has a
// named field, defaults are applied at load/construction time, and
// nothing reads the environment at use sites.
type Config struct {
	// KBDir is the knowledge-base directory of tagged markdown files.
	KBDir string `yaml:"kb_dir"`
	// CachePath is the directory of the persisted index cache.
	CachePath string `yaml:"cache_path"`

	Chunk     ChunkConfig     `yaml:"chunk"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Lexical   LexicalConfig   `yaml:"lexical"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Build     BuildConfig     `yaml:"build"`
}

// ChunkConfig configures how documents are split into fragments.
type ChunkConfig struct {
	Size    int `yaml:"size"`
	Overlap int `yaml:"overlap"`
}

// EmbeddingConfig configures the embedding service.
type EmbeddingConfig struct {
	Host  string `yaml:"host"`
	Model string `yaml:"model"`
}

// LexicalConfig configures the character n-gram vectorizer.
type LexicalConfig struct {
	GramMin    int     `yaml:"gram_min"`
	GramMax    int     `yaml:"gram_max"`
	MaxDocFreq float64 `yaml:"max_doc_freq"`
}

// ScoringConfig configures thresholding, topic gating, and fusion.
type ScoringConfig struct {
	// MinScore is the hybrid score threshold. 0 means the default
	// (0.15); a negative value disables the threshold entirely.
	MinScore        float32 `yaml:"min_score"`
	TopicBoost      float32 `yaml:"topic_boost"`
	OffTopicPenalty float32 `yaml:"off_topic_penalty"`
	EmbedWeight     float32 `yaml:"embed_weight"`
	LexicalWeight   float32 `yaml:"lexical_weight"`
}

// BuildConfig configures index build concurrency and retries.
type BuildConfig struct {
	EmbedBatchSize int `yaml:"embed_batch_size"`
	PoolSize       int `yaml:"pool_size"`
	MaxRetries     int `yaml:"max_retries"`
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a config from the given path. A missing file is not
// an error: the defaults are returned, so the engine always starts.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills zero-valued fields with the documented defaults.
func (c *Config) applyDefaults() {
	if c.KBDir == "" {
		c.KBDir = "kb"
	}
	if c.CachePath == "" {
		c.CachePath = ".kbsearch-cache"
	}
	if c.Chunk.Size == 0 {
		c.Chunk.Size = 900
	}
	if c.Chunk.Overlap == 0 {
		c.Chunk.Overlap = 120
	}
	if c.Embedding.Host == "" {
		c.Embedding.Host = "http://localhost:11434/v1"
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = "bge-m3"
	}
	if c.Lexical.GramMin == 0 {
		c.Lexical.GramMin = 2
	}
	if c.Lexical.GramMax == 0 {
		c.Lexical.GramMax = 4
	}
	if c.Lexical.MaxDocFreq == 0 {
		c.Lexical.MaxDocFreq = 0.95
	}
	if c.Scoring.MinScore == 0 {
		c.Scoring.MinScore = search.DefaultMinScore
	} else if c.Scoring.MinScore < 0 {
		c.Scoring.MinScore = 0
	}
	if c.Scoring.TopicBoost == 0 {
		c.Scoring.TopicBoost = search.DefaultTopicBoost
	}
	if c.Scoring.OffTopicPenalty == 0 {
		c.Scoring.OffTopicPenalty = search.DefaultOffTopicPenalty
	}
	if c.Scoring.EmbedWeight == 0 && c.Scoring.LexicalWeight == 0 {
		c.Scoring.EmbedWeight = search.DefaultEmbedWeight
		c.Scoring.LexicalWeight = search.DefaultLexicalWeight
	}
	if c.Build.EmbedBatchSize == 0 {
		c.Build.EmbedBatchSize = 32
	}
	if c.Build.MaxRetries == 0 {
		c.Build.MaxRetries = 3
	}
}

// indexConfig maps the engine config onto the index service config.
func (c *Config) indexConfig() index.Config {
	return index.Config{
		KBDir:          c.KBDir,
		ChunkSize:      c.Chunk.Size,
		ChunkOverlap:   c.Chunk.Overlap,
		GramMin:        c.Lexical.GramMin,
		GramMax:        c.Lexical.GramMax,
		MaxDocFreq:     c.Lexical.MaxDocFreq,
		EmbedBatchSize: c.Build.EmbedBatchSize,
		MaxRetries:     c.Build.MaxRetries,
		ModelID:        c.Embedding.Model,
	}
}

// aiConfig maps the engine config onto the embedding provider config.
func (c *Config) aiConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithHost(c.Embedding.Host),
		ai.WithEmbeddingModel(c.Embedding.Model),
	)
}

// searchOptions maps the scoring config onto searcher options.
func (c *Config) searchOptions() []search.Option {
	return []search.Option{
		search.WithMinScore(c.Scoring.MinScore),
		search.WithTopicGating(c.Scoring.TopicBoost, c.Scoring.OffTopicPenalty),
		search.WithFusionWeights(c.Scoring.EmbedWeight, c.Scoring.LexicalWeight),
	}
}
