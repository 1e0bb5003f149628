package issuescout

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/issuescout/ai/mock"
	"github.com/poiesic/issuescout/core"
	"github.com/poiesic/issuescout/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRetriever struct {
	calls int
}

func (s *stubRetriever) FetchIssues(ctx context.Context, query github.Query) ([]core.Issue, error) {
	s.calls++
	return []core.Issue{
		{Title: "Fix flaky test", URL: "https://github.com/a/b/issues/1", Repo: "a/b"},
		{Title: "Improve docs", URL: "https://github.com/a/b/issues/2", Repo: "a/b"},
	}, nil
}

func newTestRecommender(t *testing.T, opts ...RecommenderOption) (*Recommender, *stubRetriever) {
	t.Helper()

	retriever := &stubRetriever{}
	base := []RecommenderOption{
		WithProvider(mock.NewMockProvider()),
		WithRetriever(retriever),
		WithInMemoryCache(),
	}
	rec, err := New("", append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { rec.Close() })

	return rec, retriever
}

func TestNew(t *testing.T) {
	t.Run("create new recommender", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "cache")
		rec, err := New(tmpDir,
			WithProvider(mock.NewMockProvider()),
			WithRetriever(&stubRetriever{}))
		require.NoError(t, err)
		require.NotNil(t, rec)
		defer rec.Close()

		assert.NotNil(t, rec.Cache())
		assert.NotNil(t, rec.backend)
		assert.NotNil(t, rec.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		rec, err := New(tmpFile, WithProvider(mock.NewMockProvider()))
		assert.Error(t, err)
		assert.Nil(t, rec)
	})
}

func TestRecommender_Close(t *testing.T) {
	rec, err := New(t.TempDir(),
		WithProvider(mock.NewMockProvider()),
		WithRetriever(&stubRetriever{}))
	require.NoError(t, err)

	assert.NoError(t, rec.Close())
}

func TestRecommender_Recommend(t *testing.T) {
	rec, retriever := newTestRecommender(t)

	result, err := rec.Recommend(context.Background(), &core.Request{
		Profile: "I build REST APIs in Go and fix production bugs",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, retriever.calls)
	assert.Len(t, result.Issues, 2)
	assert.True(t, result.Ranked)
}

func TestRecommender_ModelMismatch(t *testing.T) {
	rec, _ := newTestRecommender(t)

	_, err := rec.Recommend(context.Background(), &core.Request{
		Model: "some-other-model",
	})
	assert.ErrorIs(t, err, core.ErrModelMismatch)

	// The configured model is accepted
	_, err = rec.Recommend(context.Background(), &core.Request{
		Model: "all-MiniLM-L6-v2",
	})
	assert.NoError(t, err)

	// And so is an unset model
	_, err = rec.Recommend(context.Background(), &core.Request{})
	assert.NoError(t, err)
}

func TestRecommender_WarmReferences(t *testing.T) {
	rec, _ := newTestRecommender(t)
	assert.NoError(t, rec.WarmReferences(context.Background()))
}

func TestRecommender_ClearMethods(t *testing.T) {
	rec, retriever := newTestRecommender(t)
	ctx := context.Background()

	_, err := rec.Recommend(ctx, &core.Request{Language: "go"})
	require.NoError(t, err)
	assert.Equal(t, 1, retriever.calls)

	// Cached: no new fetch
	_, err = rec.Recommend(ctx, &core.Request{Language: "go"})
	require.NoError(t, err)
	assert.Equal(t, 1, retriever.calls)

	require.NoError(t, rec.ClearIssueBatches(ctx))

	// Cleared: fetch again
	_, err = rec.Recommend(ctx, &core.Request{Language: "go"})
	require.NoError(t, err)
	assert.Equal(t, 2, retriever.calls)

	assert.NoError(t, rec.ClearProfileEmbeddings(ctx))
	assert.NoError(t, rec.ClearReferenceEmbeddings(ctx))
	assert.NoError(t, rec.ClearAll(ctx))
}

func TestRecommender_LLMClassifier(t *testing.T) {
	provider := mock.NewMockProvider()
	retriever := &stubRetriever{}
	rec, err := New("",
		WithProvider(provider),
		WithRetriever(retriever),
		WithInMemoryCache(),
		WithLLMClassifier())
	require.NoError(t, err)
	defer rec.Close()

	result, err := rec.Recommend(context.Background(), &core.Request{
		Profile: "expert go architect leading platform teams",
	})
	require.NoError(t, err)

	assert.Equal(t, "go", result.Language)
	assert.Equal(t, core.LevelAdvanced, result.Experience)
}
