package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities, generated by
// content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Topic is a coarse subject label assigned to knowledge-base fragments.
type Topic string

const (
	TopicSkincare   Topic = "skincare"
	TopicExercise   Topic = "exercise"
	TopicDiet       Topic = "diet"
	TopicSleep      Topic = "sleep"
	TopicPsychology Topic = "psychology"
	// TopicGeneral is the fallback when no specific topic applies.
	TopicGeneral Topic = "general"
)

// Topics lists every valid topic, TopicGeneral last.
var Topics = []Topic{
	TopicSkincare,
	TopicExercise,
	TopicDiet,
	TopicSleep,
	TopicPsychology,
	TopicGeneral,
}

// Fragment is an immutable, citable unit of knowledge-base text.
// Fragments are created once at index-build time and never mutated;
// a rebuild produces a fresh fragment list.
type Fragment struct {
	// ID is the content-derived identity of the fragment: equal text
	// yields an equal ID across rebuilds, independent of source path
	// or position.
	ID   ID
	Text string
	// Path is the slash-normalized source file path, or "builtin/<topic>"
	// for fallback fragments.
	Path string
	// FragmentID is a human-readable citation label, e.g. "sleep.md §3".
	FragmentID string
	Topic      Topic
}

// SparseVector is a sparse term-weight vector with indices sorted ascending.
// Indices and Values are parallel slices.
type SparseVector struct {
	Indices []uint32
	Values  []float32
}

// Dot computes the dot product with another sparse vector.
// Both vectors must have ascending indices.
func (v SparseVector) Dot(other SparseVector) float32 {
	var sum float32
	i, j := 0, 0
	for i < len(v.Indices) && j < len(other.Indices) {
		switch {
		case v.Indices[i] == other.Indices[j]:
			sum += v.Values[i] * other.Values[j]
			i++
			j++
		case v.Indices[i] < other.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// LexicalModel is the fitted state of the character n-gram vectorizer.
// It is persisted alongside the lexical matrix so a cached index can
// project queries with the exact vocabulary learned at build time.
type LexicalModel struct {
	MinGram    int
	MaxGram    int
	MaxDocFreq float64
	// Terms holds the vocabulary in index order.
	Terms []string
	// IDF holds the inverse document frequency per term, parallel to Terms.
	IDF []float32
}

// Snapshot is the searchable index state: one dense unit vector and one
// sparse lexical vector per fragment, plus the fingerprint that decided
// cache validity. Fragment order is the ranking tie-break order and must
// never change after build.
type Snapshot struct {
	Fingerprint string
	Fragments   []Fragment
	Dense       [][]float32
	Lexical     LexicalModel
	LexicalRows []SparseVector
}

// ScoredResult is a single ranked search hit with per-signal scores.
// All scores are in [0,1]. Rank is 1-based.
type ScoredResult struct {
	Fragment     *Fragment
	ScoreEmbed   float32
	ScoreLexical float32
	ScoreHybrid  float32
	Rank         int
}
