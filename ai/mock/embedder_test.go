package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicVector(t *testing.T) {
	v1 := DeterministicVector("same text", 64)
	v2 := DeterministicVector("same text", 64)
	v3 := DeterministicVector("other text", 64)

	assert.Equal(t, v1, v2)
	assert.NotEqual(t, v1, v3)
	require.Len(t, v1, 64)

	var norm float64
	for _, v := range v1 {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, norm, 1e-6)
}

func TestMockEmbedder_Defaults(t *testing.T) {
	embedder := NewMockEmbedder()
	ctx := context.Background()

	single, err := embedder.EmbedText(ctx, "hello")
	require.NoError(t, err)
	assert.Len(t, single, 64)

	batch, err := embedder.EmbedTexts(ctx, []string{"hello", "world"})
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, single, batch[0])

	assert.Equal(t, 2, embedder.CallCount())
}

func TestMockEmbedder_Injection(t *testing.T) {
	embedder := NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 2, 3}, nil
	}

	v, err := embedder.EmbedText(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, v)

	embedder.Reset()
	assert.Equal(t, 0, embedder.CallCount())
	assert.Nil(t, embedder.EmbedTextFunc)
}
