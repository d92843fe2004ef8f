package lexical

import (
	"math"
	"sort"

	"github.com/lumawell/kbsearch/core"
)

const (
	// DefaultMinGram and DefaultMaxGram bound the character n-gram range.
	DefaultMinGram = 2
	DefaultMaxGram = 4
	// DefaultMaxDocFreq excludes grams occurring in more than this
	// fraction of fragments.
	DefaultMaxDocFreq = 0.95
)

// Vectorizer is a character n-gram TF-IDF vectorizer. It works on raw
// runes without word-boundary assumptions, so scoring behaves uniformly
// across scripts in mixed-language corpora.
//
// Term frequency is sublinear (1 + ln tf) and rows are L2-normalized,
// so the dot product of two transformed vectors is a cosine similarity
// in [0,1].
type Vectorizer struct {
	minGram    int
	maxGram    int
	maxDocFreq float64

	vocabulary map[string]uint32
	terms      []string
	idf        []float32
	fitted     bool
}

// Option configures a Vectorizer.
type Option func(*Vectorizer)

// WithGramRange sets the inclusive character n-gram length range.
func WithGramRange(minGram, maxGram int) Option {
	return func(v *Vectorizer) {
		if minGram > 0 {
			v.minGram = minGram
		}
		if maxGram >= v.minGram {
			v.maxGram = maxGram
		}
	}
}

// WithMaxDocFreq sets the stopword-like document frequency cutoff.
// Grams present in more than the given fraction of documents are
// dropped from the vocabulary. Values outside (0,1] are ignored.
func WithMaxDocFreq(maxDocFreq float64) Option {
	return func(v *Vectorizer) {
		if maxDocFreq > 0 && maxDocFreq <= 1 {
			v.maxDocFreq = maxDocFreq
		}
	}
}

// NewVectorizer creates an unfitted vectorizer.
func NewVectorizer(opts ...Option) *Vectorizer {
	v := &Vectorizer{
		minGram:    DefaultMinGram,
		maxGram:    DefaultMaxGram,
		maxDocFreq: DefaultMaxDocFreq,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewFromModel reconstructs a fitted vectorizer from persisted state.
func NewFromModel(model core.LexicalModel) *Vectorizer {
	v := &Vectorizer{
		minGram:    model.MinGram,
		maxGram:    model.MaxGram,
		maxDocFreq: model.MaxDocFreq,
		terms:      model.Terms,
		idf:        model.IDF,
		vocabulary: make(map[string]uint32, len(model.Terms)),
		fitted:     true,
	}
	for i, term := range model.Terms {
		v.vocabulary[term] = uint32(i)
	}
	return v
}

// Model returns the persistable state of a fitted vectorizer.
func (v *Vectorizer) Model() core.LexicalModel {
	return core.LexicalModel{
		MinGram:    v.minGram,
		MaxGram:    v.maxGram,
		MaxDocFreq: v.maxDocFreq,
		Terms:      v.terms,
		IDF:        v.idf,
	}
}

// Fit learns the vocabulary and IDF weights from the corpus and returns
// one L2-normalized TF-IDF row per document, in input order.
func (v *Vectorizer) Fit(texts []string) ([]core.SparseVector, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyCorpus
	}

	// Document frequency per gram
	counts := make([]map[string]int, len(texts))
	df := make(map[string]int)
	for i, text := range texts {
		counts[i] = v.gramCounts(text)
		for gram := range counts[i] {
			df[gram]++
		}
	}

	// Stopword-like suppression. Only meaningful with more than one
	// document; with a single document every gram has df == N.
	n := len(texts)
	limit := n
	if n > 1 {
		limit = int(math.Floor(v.maxDocFreq * float64(n)))
		if limit < 1 {
			limit = 1
		}
	}

	terms := make([]string, 0, len(df))
	for gram, freq := range df {
		if freq <= limit {
			terms = append(terms, gram)
		}
	}
	if len(terms) == 0 {
		return nil, ErrEmptyVocabulary
	}
	sort.Strings(terms)

	v.terms = terms
	v.vocabulary = make(map[string]uint32, len(terms))
	v.idf = make([]float32, len(terms))
	for i, term := range terms {
		v.vocabulary[term] = uint32(i)
		// Smoothed IDF
		v.idf[i] = float32(math.Log((1+float64(n))/(1+float64(df[term]))) + 1)
	}
	v.fitted = true

	rows := make([]core.SparseVector, len(texts))
	for i := range texts {
		rows[i] = v.weigh(counts[i])
	}
	return rows, nil
}

// Transform projects a query into the fitted vocabulary space.
// Grams unseen at fit time are ignored. Returns an empty vector when
// the query shares no grams with the vocabulary.
func (v *Vectorizer) Transform(text string) (core.SparseVector, error) {
	if !v.fitted {
		return core.SparseVector{}, ErrNotFitted
	}
	return v.weigh(v.gramCounts(text)), nil
}

// Fitted reports whether the vectorizer has a learned vocabulary.
func (v *Vectorizer) Fitted() bool { return v.fitted }

// gramCounts extracts rune n-gram occurrence counts for every length in
// [minGram, maxGram]. The text is not lowercased or tokenized.
func (v *Vectorizer) gramCounts(text string) map[string]int {
	runes := []rune(text)
	counts := make(map[string]int)
	for n := v.minGram; n <= v.maxGram; n++ {
		for i := 0; i+n <= len(runes); i++ {
			counts[string(runes[i:i+n])]++
		}
	}
	return counts
}

// weigh turns gram counts into a sublinear-TF, IDF-weighted,
// L2-normalized sparse vector over the fitted vocabulary.
func (v *Vectorizer) weigh(counts map[string]int) core.SparseVector {
	indices := make([]uint32, 0, len(counts))
	for gram := range counts {
		if idx, ok := v.vocabulary[gram]; ok {
			indices = append(indices, idx)
		}
	}
	if len(indices) == 0 {
		return core.SparseVector{}
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	values := make([]float32, len(indices))
	var norm float64
	for i, idx := range indices {
		tf := 1 + math.Log(float64(counts[v.terms[idx]]))
		w := float32(tf) * v.idf[idx]
		values[i] = w
		norm += float64(w) * float64(w)
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range values {
			values[i] = float32(float64(values[i]) / norm)
		}
	}
	return core.SparseVector{Indices: indices, Values: values}
}
