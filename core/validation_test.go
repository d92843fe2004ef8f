package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validFragment() Fragment {
	return Fragment{
		Text:       "some knowledge",
		Path:       "kb/diet-basics.md",
		FragmentID: "diet-basics.md §1",
		Topic:      TopicDiet,
	}
}

func TestValidateFragment(t *testing.T) {
	t.Run("valid fragment", func(t *testing.T) {
		f := validFragment()
		assert.NoError(t, ValidateFragment(&f))
	})

	t.Run("nil fragment", func(t *testing.T) {
		assert.ErrorIs(t, ValidateFragment(nil), ErrInvalidFragment)
	})

	t.Run("empty text", func(t *testing.T) {
		f := validFragment()
		f.Text = ""
		err := ValidateFragment(&f)
		assert.ErrorIs(t, err, ErrInvalidFragment)
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("empty fragment id", func(t *testing.T) {
		f := validFragment()
		f.FragmentID = ""
		err := ValidateFragment(&f)
		assert.ErrorIs(t, err, ErrInvalidFragment)
		assert.ErrorIs(t, err, ErrEmptyFragmentID)
	})

	t.Run("unknown topic", func(t *testing.T) {
		f := validFragment()
		f.Topic = Topic("astrology")
		err := ValidateFragment(&f)
		assert.ErrorIs(t, err, ErrInvalidFragment)
		assert.ErrorIs(t, err, ErrInvalidTopic)
	})
}

func TestValidateTopic(t *testing.T) {
	for _, topic := range Topics {
		assert.NoError(t, ValidateTopic(topic))
	}
	assert.ErrorIs(t, ValidateTopic(Topic("")), ErrInvalidTopic)
	assert.ErrorIs(t, ValidateTopic(Topic("astrology")), ErrInvalidTopic)
}

func TestValidateSnapshot(t *testing.T) {
	valid := func() *Snapshot {
		return &Snapshot{
			Fingerprint: "abcdef0123456789",
			Fragments:   []Fragment{validFragment()},
			Dense:       [][]float32{{1, 0}},
			Lexical: LexicalModel{
				MinGram: 2, MaxGram: 4, MaxDocFreq: 0.95,
				Terms: []string{"so", "om"},
				IDF:   []float32{1, 1},
			},
			LexicalRows: []SparseVector{{Indices: []uint32{0}, Values: []float32{1}}},
		}
	}

	t.Run("valid snapshot", func(t *testing.T) {
		assert.NoError(t, ValidateSnapshot(valid()))
	})

	t.Run("nil snapshot", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSnapshot(nil), ErrInvalidSnapshot)
	})

	t.Run("dense row count mismatch", func(t *testing.T) {
		s := valid()
		s.Dense = nil
		err := ValidateSnapshot(s)
		assert.ErrorIs(t, err, ErrInvalidSnapshot)
		assert.ErrorIs(t, err, ErrMatrixShapeMismatch)
	})

	t.Run("lexical row count mismatch", func(t *testing.T) {
		s := valid()
		s.LexicalRows = append(s.LexicalRows, SparseVector{})
		err := ValidateSnapshot(s)
		assert.ErrorIs(t, err, ErrMatrixShapeMismatch)
	})

	t.Run("lexical model idf mismatch", func(t *testing.T) {
		s := valid()
		s.Lexical.IDF = s.Lexical.IDF[:1]
		assert.ErrorIs(t, ValidateSnapshot(s), ErrInvalidSnapshot)
	})

	t.Run("empty snapshot is valid", func(t *testing.T) {
		assert.NoError(t, ValidateSnapshot(&Snapshot{}))
	})
}
