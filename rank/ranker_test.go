package rank

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/issuescout/ai/mock"
	"github.com/poiesic/issuescout/core"
	badgerstore "github.com/poiesic/issuescout/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRanker(t *testing.T, embedder *mock.MockEmbedder) *Ranker {
	t.Helper()

	cache, backend, err := badgerstore.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() {
		cache.Close()
		backend.Close()
	})

	return NewRanker(embedder, cache)
}

func TestRankEmptyIssueList(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	ranker := newTestRanker(t, embedder)

	ranked, err := ranker.Rank(context.Background(), "profile", nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
	assert.Zero(t, embedder.CallCount())
}

func TestRankOrdersBySimilarity(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0}, nil
	}
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		// First issue orthogonal, second aligned, third in between
		return [][]float32{{0, 1}, {1, 0}, {1, 1}}, nil
	}

	ranker := newTestRanker(t, embedder)

	issues := []core.Issue{
		{Title: "far"},
		{Title: "exact"},
		{Title: "close"},
	}

	ranked, err := ranker.Rank(context.Background(), "profile", issues)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "exact", ranked[0].Issue.Title)
	assert.Equal(t, "close", ranked[1].Issue.Title)
	assert.Equal(t, "far", ranked[2].Issue.Title)

	assert.Equal(t, float32(1), ranked[0].Similarity)
	assert.Equal(t, float32(0.7071), ranked[1].Similarity)
	assert.Equal(t, float32(0), ranked[2].Similarity)
}

func TestRankStableOnEqualScores(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0}, nil
	}
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{1, 0}
		}
		return out, nil
	}

	ranker := newTestRanker(t, embedder)

	issues := []core.Issue{{Title: "first"}, {Title: "second"}, {Title: "third"}}
	ranked, err := ranker.Rank(context.Background(), "profile", issues)
	require.NoError(t, err)

	assert.Equal(t, "first", ranked[0].Issue.Title)
	assert.Equal(t, "second", ranked[1].Issue.Title)
	assert.Equal(t, "third", ranked[2].Issue.Title)
}

func TestRankCachesProfileEmbedding(t *testing.T) {
	var singleEmbeds int
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		singleEmbeds++
		return []float32{1, 0}, nil
	}

	ranker := newTestRanker(t, embedder)
	issues := []core.Issue{{Title: "one"}}

	_, err := ranker.Rank(context.Background(), "profile", issues)
	require.NoError(t, err)
	_, err = ranker.Rank(context.Background(), "profile", issues)
	require.NoError(t, err)

	assert.Equal(t, 1, singleEmbeds)
}

func TestRankEmbedderFailure(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("model unavailable")
	}

	ranker := newTestRanker(t, embedder)

	_, err := ranker.Rank(context.Background(), "profile", []core.Issue{{Title: "x"}})
	assert.Error(t, err)
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, float32(0.1235), roundScore(0.12345))
	assert.Equal(t, float32(1), roundScore(1.00001))
	assert.Equal(t, float32(-0.5), roundScore(-0.49999))
}
