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


// Package kbsearch is a hybrid knowledge-base retrieval engine. It
// turns a free-text query into a ranked list of citable document
// fragments by fusing dense semantic similarity with sparse lexical
// similarity, gated by an inferred topic.
//
// The Engine is the single entry point: it wires the embedding
// provider, the cached index service, and the hybrid searcher, and
// stays queryable even when the knowledge base is empty or the cache
// is corrupt.
package kbsearch

import (
	"context"
	"log/slog"

	"github.com/lumawell/kbsearch/ai"
	"github.com/lumawell/kbsearch/ai/openai"
	"github.com/lumawell/kbsearch/core"
	"github.com/lumawell/kbsearch/index"
	"github.com/lumawell/kbsearch/search"
	"github.com/lumawell/kbsearch/storage"
	"github.com/lumawell/kbsearch/storage/badger"
	"github.com/lumawell/kbsearch/topic"
)

// Engine ties the retrieval components together for the lifetime of
// the process. The embedding provider is created exactly once and
// shared by index builds and searches.
type Engine struct {
	cfg        *Config
	provider   ai.Provider
	store      storage.SnapshotStore
	classifier topic.Classifier
	service    *index.Service
	searcher   *search.Searcher
	logger     *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	provider   ai.Provider
	store      storage.SnapshotStore
	classifier topic.Classifier
	logger     *slog.Logger
}

// WithProvider injects a custom embedding provider.
// Default is the OpenAI-compatible provider from the config.
func WithProvider(provider ai.Provider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithStore injects a custom snapshot store.
// Default is a BadgerDB store at the configured cache path.
func WithStore(store storage.SnapshotStore) EngineOption {
	return func(o *engineOptions) {
		o.store = store
	}
}

// WithClassifier injects a custom topic classifier.
// Default is the keyword classifier.
func WithClassifier(classifier topic.Classifier) EngineOption {
	return func(o *engineOptions) {
		o.classifier = classifier
	}
}

// WithEngineLogger sets a custom logger for the engine and its components.
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// NewEngine constructs and opens the retrieval engine: the index is
// loaded from cache or built from the corpus before this returns, so a
// successful return means the engine is queryable. Unavailability of
// the embedding backend is the only construction-time fatal condition;
// cache problems degrade to a rebuild.
func NewEngine(ctx context.Context, cfg *Config, opts ...EngineOption) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg.applyDefaults()
	}

	options := &engineOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(cfg.aiConfig())
		if err != nil {
			return nil, err
		}
	}

	store := options.store
	if store == nil {
		var err error
		store, err = badger.NewSnapshotStore(cfg.CachePath)
		if err != nil {
			provider.Close()
			return nil, err
		}
	}

	classifier := options.classifier
	if classifier == nil {
		classifier = topic.NewKeywordClassifier()
	}

	serviceOpts := []index.Option{index.WithLogger(options.logger)}
	if cfg.Build.PoolSize > 0 {
		serviceOpts = append(serviceOpts, index.WithPoolSize(cfg.Build.PoolSize))
	}
	service, err := index.NewService(
		cfg.indexConfig(),
		provider.Embedder(),
		store,
		classifier,
		serviceOpts...,
	)
	if err != nil {
		store.Close()
		provider.Close()
		return nil, err
	}

	if err := service.Open(ctx); err != nil {
		service.Release()
		store.Close()
		provider.Close()
		return nil, err
	}

	searcherOpts := append(cfg.searchOptions(), search.WithLogger(options.logger))
	searcher, err := search.NewSearcher(service, provider.Embedder(), classifier, searcherOpts...)
	if err != nil {
		service.Release()
		store.Close()
		provider.Close()
		return nil, err
	}

	return &Engine{
		cfg:        cfg,
		provider:   provider,
		store:      store,
		classifier: classifier,
		service:    service,
		searcher:   searcher,
		logger:     options.logger,
	}, nil
}

// Search returns up to k fragments ranked by hybrid score.
func (e *Engine) Search(ctx context.Context, query string, k int) ([]*core.ScoredResult, error) {
	return e.searcher.Search(ctx, query, k)
}

// SearchWithMonitor searches with stage-level monitoring.
func (e *Engine) SearchWithMonitor(ctx context.Context, query string, k int, monitor search.SearchMonitor) ([]*core.ScoredResult, error) {
	return e.searcher.SearchWithMonitor(ctx, query, k, monitor)
}

// Rebuild forces a fresh index build from the corpus.
func (e *Engine) Rebuild(ctx context.Context) error {
	return e.service.Rebuild(ctx)
}

// Index returns the active index for inspection.
func (e *Engine) Index() (*index.Index, error) {
	return e.service.Current()
}

// Close releases the engine's resources.
func (e *Engine) Close() error {
	e.service.Release()

	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing embedding provider", "err", err)
	}

	if err := e.store.Close(); err != nil {
		e.logger.Error("error closing snapshot store", "err", err)
		return err
	}
	return nil
}
