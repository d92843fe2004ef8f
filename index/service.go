package index

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/lumawell/kbsearch/ai"
	"github.com/lumawell/kbsearch/core"
	"github.com/lumawell/kbsearch/lexical"
	"github.com/lumawell/kbsearch/storage"
	"github.com/lumawell/kbsearch/topic"
)

// Index pairs an immutable snapshot with the vectorizer reconstructed
// from its lexical model. Searches read it without locking; rebuilds
// replace it atomically.
type Index struct {
	Snapshot   *core.Snapshot
	Vectorizer *lexical.Vectorizer
}

// Len returns the number of indexed fragments.
func (ix *Index) Len() int {
	return len(ix.Snapshot.Fragments)
}

// Service owns the searchable index for the lifetime of the process.
// It decides between loading a cached snapshot and rebuilding from the
// corpus, and swaps rebuilt indexes in atomically so concurrent
// searches always see a complete, consistent snapshot.
type Service struct {
	cfg        Config
	embedder   ai.Embedder
	store      storage.SnapshotStore
	classifier topic.Classifier
	pool       *ants.Pool
	logger     *slog.Logger

	current atomic.Pointer[Index]
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Service) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// NewService creates an index service. The embedder, store, and
// classifier are required; their absence is a startup-time fatal
// condition, not a per-query one.
func NewService(
	cfg Config,
	embedder ai.Embedder,
	store storage.SnapshotStore,
	classifier topic.Classifier,
	opts ...Option,
) (*Service, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Service{
		cfg:        cfg.normalized(),
		embedder:   embedder,
		store:      store,
		classifier: classifier,
		pool:       pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	return s, nil
}

// Open makes the service queryable: it computes the live corpus
// fingerprint, adopts the cached snapshot when the fingerprint matches,
// and rebuilds otherwise. Every cache load problem — absent entry,
// undecodable bytes, stale fingerprint — is a rebuild, never an error.
func (s *Service) Open(ctx context.Context) error {
	fingerprint := s.liveFingerprint()

	cached, err := s.store.Load(ctx)
	if err == nil && cached.Fingerprint == fingerprint {
		if err := core.ValidateSnapshot(cached); err == nil {
			s.logger.Info("reusing cached index",
				"fingerprint", fingerprint, "fragments", len(cached.Fragments))
			s.current.Store(&Index{
				Snapshot:   cached,
				Vectorizer: lexical.NewFromModel(cached.Lexical),
			})
			return nil
		}
		s.logger.Warn("cached index failed validation, rebuilding", "fingerprint", fingerprint)
	} else if err == nil {
		s.logger.Info("cached index is stale, rebuilding",
			"cached", cached.Fingerprint, "live", fingerprint)
	} else {
		s.logger.Debug("no usable cached index", "err", err)
	}

	return s.rebuild(ctx, fingerprint)
}

// Rebuild forces a fresh build from the corpus, persists it
// best-effort, and atomically swaps it in.
func (s *Service) Rebuild(ctx context.Context) error {
	return s.rebuild(ctx, s.liveFingerprint())
}

func (s *Service) rebuild(ctx context.Context, fingerprint string) error {
	built, err := s.build(ctx, fingerprint)
	if err != nil {
		return err
	}

	// Persistence is best-effort: a read-only cache never makes the
	// in-memory index unusable.
	if err := s.store.Save(ctx, built.Snapshot); err != nil {
		s.logger.Warn("failed to persist index snapshot", "err", err)
	}

	s.current.Store(built)
	s.logger.Info("index built",
		"fingerprint", fingerprint,
		"fragments", built.Len(),
		"lexicalTerms", len(built.Snapshot.Lexical.Terms))
	return nil
}

// Current returns the active index, or ErrNotOpened before Open.
func (s *Service) Current() (*Index, error) {
	ix := s.current.Load()
	if ix == nil {
		return nil, ErrNotOpened
	}
	return ix, nil
}

// liveFingerprint computes the fingerprint of the corpus on disk.
func (s *Service) liveFingerprint() string {
	return Fingerprint(s.sourceFiles(), s.cfg.ModelID, FormatTag)
}

// Release releases the worker pool. The service should not be used
// after calling Release.
func (s *Service) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}
