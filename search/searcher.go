package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/lumawell/kbsearch/ai"
	"github.com/lumawell/kbsearch/core"
	"github.com/lumawell/kbsearch/index"
	"github.com/lumawell/kbsearch/topic"
)

// Default fusion and gating parameters.
const (
	DefaultMinScore        = 0.15
	DefaultTopicBoost      = 1.3
	DefaultOffTopicPenalty = 0.6
	DefaultEmbedWeight     = 0.7
	DefaultLexicalWeight   = 0.3
)

// Searcher ranks knowledge-base fragments for a query by fusing dense
// semantic similarity with sparse lexical similarity, gated by an
// inferred topic.
type Searcher struct {
	service    *index.Service
	embedder   ai.Embedder
	classifier topic.Classifier
	logger     *slog.Logger

	minScore        float32
	topicBoost      float32
	offTopicPenalty float32
	embedWeight     float32
	lexicalWeight   float32
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMinScore sets the hybrid score threshold below which fragments
// are filtered out. When no fragment clears it, the full candidate set
// is ranked instead, so a non-empty index never returns empty results.
func WithMinScore(minScore float32) Option {
	return func(s *Searcher) error {
		if minScore < 0 || minScore > 1 {
			return ErrInvalidThreshold
		}
		s.minScore = minScore
		return nil
	}
}

// WithTopicGating sets the multiplicative boost applied to fragments
// matching the query's inferred topic and the penalty applied to all
// others. Boost must be > 1, penalty in (0, 1).
func WithTopicGating(boost, penalty float32) Option {
	return func(s *Searcher) error {
		if boost <= 1 || penalty <= 0 || penalty >= 1 {
			return ErrInvalidGating
		}
		s.topicBoost = boost
		s.offTopicPenalty = penalty
		return nil
	}
}

// WithFusionWeights sets the hybrid fusion weights. The weights are
// not required to sum to 1; the fused score is clamped to [0,1].
func WithFusionWeights(embedWeight, lexicalWeight float32) Option {
	return func(s *Searcher) error {
		if embedWeight < 0 || lexicalWeight < 0 || embedWeight+lexicalWeight == 0 {
			return ErrInvalidWeights
		}
		s.embedWeight = embedWeight
		s.lexicalWeight = lexicalWeight
		return nil
	}
}

// NewSearcher creates a new searcher over the given index service.
func NewSearcher(
	service *index.Service,
	embedder ai.Embedder,
	classifier topic.Classifier,
	opts ...Option,
) (*Searcher, error) {
	if service == nil {
		return nil, ErrIndexServiceRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}

	s := &Searcher{
		service:         service,
		embedder:        embedder,
		classifier:      classifier,
		logger:          slog.Default(),
		minScore:        DefaultMinScore,
		topicBoost:      DefaultTopicBoost,
		offTopicPenalty: DefaultOffTopicPenalty,
		embedWeight:     DefaultEmbedWeight,
		lexicalWeight:   DefaultLexicalWeight,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns up to k fragments ranked by hybrid score.
// Results carry all three per-signal scores and a 1-based rank for
// downstream citation and debugging.
func (s *Searcher) Search(ctx context.Context, query string, k int) ([]*core.ScoredResult, error) {
	return s.SearchWithMonitor(ctx, query, k, nil)
}

// SearchWithMonitor searches with monitoring. The monitor receives
// callbacks at each stage of scoring; pass nil for no monitoring.
//
// Identical queries against an unchanged index return identical ordered
// results: every stage is deterministic and ties are broken by original
// fragment insertion order.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, k int, monitor SearchMonitor) ([]*core.ScoredResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	ix, err := s.service.Current()
	if err != nil {
		return nil, err
	}
	snapshot := ix.Snapshot

	n := len(snapshot.Fragments)
	if n == 0 || k <= 0 {
		results := []*core.ScoredResult{}
		monitor.Finish(results)
		return results, nil
	}

	// 1. Dense semantic scores: cosine via dot product of unit vectors.
	queryVector, err := s.embedder.EmbedText(ctx, index.QueryPrefix+query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	queryVector = core.NormalizeVector(queryVector)

	scoreEmbed := make([]float32, n)
	for i, row := range snapshot.Dense {
		scoreEmbed[i] = core.Dot(row, queryVector)
	}
	monitor.AfterDenseScores(scoreEmbed)

	// 2. Sparse lexical scores, min-max normalized into [0,1].
	queryLexical, err := ix.Vectorizer.Transform(query)
	if err != nil {
		s.logger.Error("error projecting query into lexical space", "err", err)
		return nil, err
	}
	scoreLexical := make([]float32, n)
	for i, row := range snapshot.LexicalRows {
		scoreLexical[i] = queryLexical.Dot(row)
	}
	minMaxScale(scoreLexical)
	monitor.AfterLexicalScores(scoreLexical)

	// 3. Topic gating: boost matching fragments, penalize the rest.
	hint, gated := s.classifier.InferHint(query)
	monitor.AfterTopicInference(hint, gated)
	if gated {
		for i, fragment := range snapshot.Fragments {
			factor := s.offTopicPenalty
			if fragment.Topic == hint {
				factor = s.topicBoost
			}
			scoreEmbed[i] *= factor
			scoreLexical[i] *= factor
		}
	}
	// Gating can push values above 1; negative cosines floor at 0.
	clamp01(scoreEmbed)
	clamp01(scoreLexical)

	// 4. Fuse both signals.
	scoreHybrid := make([]float32, n)
	for i := range scoreHybrid {
		scoreHybrid[i] = s.embedWeight*scoreEmbed[i] + s.lexicalWeight*scoreLexical[i]
	}
	clamp01(scoreHybrid)
	monitor.AfterFusion(scoreHybrid)

	// 5. Threshold, with fallback to the full candidate set.
	candidates := make([]int, 0, n)
	for i := range scoreHybrid {
		if scoreHybrid[i] >= s.minScore {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		for i := 0; i < n; i++ {
			candidates = append(candidates, i)
		}
		monitor.ThresholdFallback()
	}

	// 6. Stable sort: descending hybrid score, ties by insertion order.
	sort.SliceStable(candidates, func(a, b int) bool {
		return scoreHybrid[candidates[a]] > scoreHybrid[candidates[b]]
	})

	// 7. Take the top k and attach ranks.
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	results := make([]*core.ScoredResult, len(candidates))
	for rank, i := range candidates {
		results[rank] = &core.ScoredResult{
			Fragment:     &snapshot.Fragments[i],
			ScoreEmbed:   scoreEmbed[i],
			ScoreLexical: scoreLexical[i],
			ScoreHybrid:  scoreHybrid[i],
			Rank:         rank + 1,
		}
	}
	monitor.Finish(results)

	return results, nil
}

// minMaxScale rescales values into [0,1] in place.
// A constant vector becomes all zeros.
func minMaxScale(values []float32) {
	if len(values) == 0 {
		return
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		for i := range values {
			values[i] = 0
		}
		return
	}
	for i := range values {
		values[i] = (values[i] - lo) / span
	}
}

// clamp01 clamps values into [0,1] in place.
func clamp01(values []float32) {
	for i, v := range values {
		if v < 0 {
			values[i] = 0
		} else if v > 1 {
			values[i] = 1
		}
	}
}
