package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVector(t *testing.T) {
	tests := []struct {
		name     string
		input    []float32
		expected []float32
	}{
		{
			name:     "unit vector remains unchanged",
			input:    []float32{1.0, 0.0, 0.0},
			expected: []float32{1.0, 0.0, 0.0},
		},
		{
			name:     "scale non-unit vector",
			input:    []float32{3.0, 4.0},
			expected: []float32{0.6, 0.8},
		},
		{
			name:     "negative values",
			input:    []float32{-1.0, 1.0},
			expected: []float32{-1.0 / float32(math.Sqrt(2)), 1.0 / float32(math.Sqrt(2))},
		},
		{
			name:     "zero vector stays zero",
			input:    []float32{0, 0, 0},
			expected: []float32{0, 0, 0},
		},
		{
			name:     "empty vector",
			input:    []float32{},
			expected: []float32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeVector(tt.input)
			require.Equal(t, len(tt.expected), len(result))
			for i := range result {
				assert.InDelta(t, tt.expected[i], result[i], 1e-6, "element %d", i)
			}
		})
	}
}

func TestNormalizeVector_DoesNotMutateInput(t *testing.T) {
	input := []float32{3.0, 4.0}
	_ = NormalizeVector(input)
	assert.Equal(t, []float32{3.0, 4.0}, input)
}

func TestDot(t *testing.T) {
	assert.Equal(t, float32(0), Dot([]float32{1, 0}, []float32{0, 1}))
	assert.InDelta(t, 1.0, float64(Dot([]float32{0.6, 0.8}, []float32{0.6, 0.8})), 1e-6)
	assert.InDelta(t, -1.0, float64(Dot([]float32{1, 0}, []float32{-1, 0})), 1e-6)

	// Mismatched lengths use the shorter vector.
	assert.Equal(t, float32(2), Dot([]float32{1, 1}, []float32{2, 0, 99}))
}

func TestSparseVectorDot(t *testing.T) {
	a := SparseVector{Indices: []uint32{0, 2, 5}, Values: []float32{1, 2, 3}}
	b := SparseVector{Indices: []uint32{2, 5, 9}, Values: []float32{4, 5, 6}}

	// Shared indices 2 and 5: 2*4 + 3*5.
	assert.Equal(t, float32(23), a.Dot(b))
	assert.Equal(t, float32(23), b.Dot(a))
}

func TestSparseVectorDot_NoOverlap(t *testing.T) {
	a := SparseVector{Indices: []uint32{0, 1}, Values: []float32{1, 1}}
	b := SparseVector{Indices: []uint32{2, 3}, Values: []float32{1, 1}}
	assert.Equal(t, float32(0), a.Dot(b))
}

func TestSparseVectorDot_Empty(t *testing.T) {
	a := SparseVector{}
	b := SparseVector{Indices: []uint32{0}, Values: []float32{1}}
	assert.Equal(t, float32(0), a.Dot(b))
	assert.Equal(t, float32(0), a.Dot(a))
}

func TestIDFromContent(t *testing.T) {
	id1 := IDFromContent("same content")
	id2 := IDFromContent("same content")
	id3 := IDFromContent("different content")

	assert.Equal(t, id1, id2)
	assert.NotEqual(t, id1, id3)
}
