package index

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/lumawell/kbsearch/chunk"
	"github.com/lumawell/kbsearch/core"
	"github.com/lumawell/kbsearch/lexical"
)

// Embedding prefixes for asymmetric retrieval models (bge/e5 family).
// Passages and queries are embedded with different instruction
// prefixes; the lexical signal always uses the raw text.
const (
	PassagePrefix = "passage: "
	QueryPrefix   = "query: "
)

// sourceFiles lists the knowledge-base markdown files in sorted order.
// A missing directory yields an empty list, not an error.
func (s *Service) sourceFiles() []string {
	pattern := filepath.Join(s.cfg.KBDir, "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		s.logger.Warn("knowledge base glob failed", "pattern", pattern, "err", err)
		return nil
	}
	slices.Sort(files)
	return files
}

// loadFragments chunks every source file into topic-tagged fragments.
// Unreadable files fail the build: a partially indexed corpus would
// silently drop knowledge.
func (s *Service) loadFragments(files []string) ([]core.Fragment, error) {
	var fragments []core.Fragment
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		name := filepath.Base(file)
		topic := s.classifier.TopicOf(name)
		i := 0
		for piece := range chunk.Chunks(string(data), s.cfg.ChunkSize, s.cfg.ChunkOverlap) {
			i++
			fragments = append(fragments, core.Fragment{
				ID:         core.IDFromContent(piece),
				Text:       piece,
				Path:       filepath.ToSlash(file),
				FragmentID: fmt.Sprintf("%s §%d", name, i),
				Topic:      topic,
			})
		}
	}
	return fragments, nil
}

// builtinFragments is the minimal fallback corpus indexed when the
// knowledge-base directory is absent or empty, so the engine is always
// queryable.
func builtinFragments() []core.Fragment {
	fragments := []core.Fragment{
		{
			Text:       "Foundation diet: whole foods first, daily protein at 1.6-2.2 g per kg of bodyweight, calories adjusted around TDEE by plus or minus 300 kcal.",
			Path:       "builtin/diet",
			FragmentID: "diet-1",
			Topic:      core.TopicDiet,
		},
		{
			Text:       "Foundation training: resistance sessions 3-5 times per week, plus 150-300 minutes of cardio.",
			Path:       "builtin/exercise",
			FragmentID: "ex-1",
			Topic:      core.TopicExercise,
		},
		{
			Text:       "Foundation skincare: cleanse, moisturize, and wear sunscreen; introduce actives as tolerated.",
			Path:       "builtin/skincare",
			FragmentID: "sk-1",
			Topic:      core.TopicSkincare,
		},
	}
	for i := range fragments {
		fragments[i].ID = core.IDFromContent(fragments[i].Text)
	}
	return fragments
}

// embedFragments embeds all fragment texts with the passage prefix,
// batched and processed concurrently on the worker pool. The returned
// matrix preserves fragment order; every vector is re-normalized to
// unit length.
func (s *Service) embedFragments(ctx context.Context, fragments []core.Fragment) ([][]float32, error) {
	dense := make([][]float32, len(fragments))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		buildErr error
	)
	fail := func(err error) {
		errOnce.Do(func() { buildErr = err })
	}

	batchSize := s.cfg.EmbedBatchSize
	for start := 0; start < len(fragments); start += batchSize {
		end := min(start+batchSize, len(fragments))
		texts := make([]string, end-start)
		for i, fragment := range fragments[start:end] {
			texts[i] = PassagePrefix + fragment.Text
		}

		offset := start
		wg.Add(1)
		task := func() {
			defer wg.Done()
			var vectors [][]float32
			err := retryWithBackoff(ctx, func() error {
				var embedErr error
				vectors, embedErr = s.embedder.EmbedTexts(ctx, texts)
				return embedErr
			}, s.cfg.MaxRetries, s.cfg.RetryDelay)
			if err != nil {
				fail(err)
				return
			}
			if len(vectors) != len(texts) {
				fail(fmt.Errorf("%w: got %d, want %d", ErrEmbeddingCountMismatch, len(vectors), len(texts)))
				return
			}
			for i, vector := range vectors {
				dense[offset+i] = core.NormalizeVector(vector)
			}
		}
		if err := s.pool.Submit(task); err != nil {
			wg.Done()
			fail(err)
			break
		}
	}
	wg.Wait()

	if buildErr != nil {
		return nil, buildErr
	}
	return dense, nil
}

// build constructs a complete index from the live corpus.
func (s *Service) build(ctx context.Context, fingerprint string) (*Index, error) {
	files := s.sourceFiles()
	fragments, err := s.loadFragments(files)
	if err != nil {
		return nil, err
	}
	if len(fragments) == 0 {
		s.logger.Info("knowledge base empty, indexing builtin fallback corpus", "dir", s.cfg.KBDir)
		fragments = builtinFragments()
	}

	dense, err := s.embedFragments(ctx, fragments)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(fragments))
	for i, fragment := range fragments {
		texts[i] = fragment.Text
	}
	vectorizer := lexical.NewVectorizer(
		lexical.WithGramRange(s.cfg.GramMin, s.cfg.GramMax),
		lexical.WithMaxDocFreq(s.cfg.MaxDocFreq),
	)
	rows, err := vectorizer.Fit(texts)
	if err != nil {
		return nil, err
	}

	snapshot := &core.Snapshot{
		Fingerprint: fingerprint,
		Fragments:   fragments,
		Dense:       dense,
		Lexical:     vectorizer.Model(),
		LexicalRows: rows,
	}
	if err := core.ValidateSnapshot(snapshot); err != nil {
		return nil, err
	}

	return &Index{Snapshot: snapshot, Vectorizer: vectorizer}, nil
}
