package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/issuescout/ai/mock"
	"github.com/poiesic/issuescout/classify"
	"github.com/poiesic/issuescout/core"
	"github.com/poiesic/issuescout/github"
	"github.com/poiesic/issuescout/rank"
	badgerstore "github.com/poiesic/issuescout/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRetriever is a test double for github.Retriever.
type fakeRetriever struct {
	fetchFunc func(ctx context.Context, query github.Query) ([]core.Issue, error)
	calls     int
	lastQuery github.Query
}

func (f *fakeRetriever) FetchIssues(ctx context.Context, query github.Query) ([]core.Issue, error) {
	f.calls++
	f.lastQuery = query
	if f.fetchFunc != nil {
		return f.fetchFunc(ctx, query)
	}
	return []core.Issue{
		{Title: "Fix docs typo", URL: "https://github.com/a/b/issues/1", Repo: "a/b"},
		{Title: "Add retry logic", URL: "https://github.com/a/b/issues/2", Repo: "a/b"},
	}, nil
}

// fakeStrategy is a test double for classify.Strategy with fixed answers.
type fakeStrategy struct {
	level           core.ExperienceLevel
	language        string
	experienceCalls int
	languageCalls   int
}

func (f *fakeStrategy) ClassifyExperience(ctx context.Context, profile string) core.ExperienceLevel {
	f.experienceCalls++
	return f.level
}

func (f *fakeStrategy) ClassifyLanguage(ctx context.Context, profile string) string {
	f.languageCalls++
	return f.language
}

func newTestPipeline(t *testing.T, retriever github.Retriever, strategy classify.Strategy, embedder *mock.MockEmbedder) *Pipeline {
	t.Helper()

	cache, backend, err := badgerstore.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() {
		cache.Close()
		backend.Close()
	})

	if embedder == nil {
		embedder = mock.NewMockEmbedder()
	}

	pipeline, err := NewPipeline(retriever, strategy, rank.NewRanker(embedder, cache), cache)
	require.NoError(t, err)
	return pipeline
}

func TestNewPipelineValidation(t *testing.T) {
	cache, backend, err := badgerstore.NewMemoryStore()
	require.NoError(t, err)
	defer backend.Close()
	defer cache.Close()

	retriever := &fakeRetriever{}
	strategy := &fakeStrategy{}
	ranker := rank.NewRanker(mock.NewMockEmbedder(), cache)

	_, err = NewPipeline(nil, strategy, ranker, cache)
	assert.ErrorIs(t, err, ErrRetrieverRequired)

	_, err = NewPipeline(retriever, nil, ranker, cache)
	assert.ErrorIs(t, err, ErrStrategyRequired)

	_, err = NewPipeline(retriever, strategy, nil, cache)
	assert.ErrorIs(t, err, ErrRankerRequired)

	_, err = NewPipeline(retriever, strategy, ranker, nil)
	assert.ErrorIs(t, err, ErrCacheRequired)
}

func TestRecommendNoProfileSkipsClassificationAndRanking(t *testing.T) {
	retriever := &fakeRetriever{}
	strategy := &fakeStrategy{}
	pipeline := newTestPipeline(t, retriever, strategy, nil)

	result, err := pipeline.Recommend(context.Background(), &core.Request{})
	require.NoError(t, err)

	assert.Zero(t, strategy.experienceCalls)
	assert.Zero(t, strategy.languageCalls)
	assert.False(t, result.Ranked)
	assert.Equal(t, core.LanguageAll, result.Language)
	assert.Equal(t, core.LevelAny, result.Experience)
	assert.Nil(t, retriever.lastQuery.Labels)
	require.Len(t, result.Issues, 2)
	// Fetch order preserved, zero similarity
	assert.Equal(t, "Fix docs typo", result.Issues[0].Issue.Title)
	assert.Zero(t, result.Issues[0].Similarity)
}

func TestRecommendDetectsLanguageAndLevel(t *testing.T) {
	retriever := &fakeRetriever{}
	strategy := &fakeStrategy{level: core.LevelBeginner, language: "go"}
	pipeline := newTestPipeline(t, retriever, strategy, nil)

	result, err := pipeline.Recommend(context.Background(), &core.Request{
		Profile: "golang developer just starting out",
	})
	require.NoError(t, err)

	assert.Equal(t, "go", result.Language)
	assert.Equal(t, core.LevelBeginner, result.Experience)
	assert.Equal(t, "go", retriever.lastQuery.Language)
	assert.Contains(t, retriever.lastQuery.Labels, "good first issue")
	assert.True(t, result.Ranked)
}

func TestRecommendExplicitLanguageSkipsDetection(t *testing.T) {
	retriever := &fakeRetriever{}
	strategy := &fakeStrategy{level: core.LevelAdvanced, language: "python"}
	pipeline := newTestPipeline(t, retriever, strategy, nil)

	result, err := pipeline.Recommend(context.Background(), &core.Request{
		Language: "rust",
		Profile:  "systems programmer",
	})
	require.NoError(t, err)

	assert.Zero(t, strategy.languageCalls)
	assert.Equal(t, 1, strategy.experienceCalls)
	assert.Equal(t, "rust", result.Language)
}

func TestRecommendCachesIssueBatch(t *testing.T) {
	retriever := &fakeRetriever{}
	strategy := &fakeStrategy{}
	pipeline := newTestPipeline(t, retriever, strategy, nil)

	req := &core.Request{Language: "go", PerPage: 10, TopN: 50}
	_, err := pipeline.Recommend(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, retriever.calls)

	// Same language and topN: served from cache
	_, err = pipeline.Recommend(context.Background(), &core.Request{Language: "go", PerPage: 10, TopN: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, retriever.calls)

	// Different topN is a different batch
	_, err = pipeline.Recommend(context.Background(), &core.Request{Language: "go", PerPage: 10, TopN: 60})
	require.NoError(t, err)
	assert.Equal(t, 2, retriever.calls)
}

func TestRecommendEmptyCachedBatchRefetches(t *testing.T) {
	retriever := &fakeRetriever{
		fetchFunc: func(ctx context.Context, query github.Query) ([]core.Issue, error) {
			return []core.Issue{}, nil
		},
	}
	pipeline := newTestPipeline(t, retriever, &fakeStrategy{}, nil)

	_, err := pipeline.Recommend(context.Background(), &core.Request{Language: "go"})
	require.NoError(t, err)
	assert.Equal(t, 1, retriever.calls)

	// A cached empty batch is treated as a miss, not served
	_, err = pipeline.Recommend(context.Background(), &core.Request{Language: "go"})
	require.NoError(t, err)
	assert.Equal(t, 2, retriever.calls)
}

func TestRecommendRanksBySimilarity(t *testing.T) {
	retriever := &fakeRetriever{
		fetchFunc: func(ctx context.Context, query github.Query) ([]core.Issue, error) {
			return []core.Issue{{Title: "far"}, {Title: "near"}}, nil
		},
	}
	strategy := &fakeStrategy{level: core.LevelAny, language: "all"}

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0}, nil
	}
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{0, 1}, {1, 0}}, nil
	}

	pipeline := newTestPipeline(t, retriever, strategy, embedder)

	result, err := pipeline.Recommend(context.Background(), &core.Request{Profile: "profile"})
	require.NoError(t, err)

	assert.True(t, result.Ranked)
	require.Len(t, result.Issues, 2)
	assert.Equal(t, "near", result.Issues[0].Issue.Title)
	assert.Equal(t, "far", result.Issues[1].Issue.Title)
}

func TestRecommendRankingFailureDegradesToUnranked(t *testing.T) {
	retriever := &fakeRetriever{}
	strategy := &fakeStrategy{level: core.LevelAny, language: "all"}

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("model unavailable")
	}

	pipeline := newTestPipeline(t, retriever, strategy, embedder)

	result, err := pipeline.Recommend(context.Background(), &core.Request{Profile: "profile"})
	require.NoError(t, err)

	assert.False(t, result.Ranked)
	require.Len(t, result.Issues, 2)
	assert.Equal(t, "Fix docs typo", result.Issues[0].Issue.Title)
}

func TestRecommendRetrieverErrorPropagates(t *testing.T) {
	retriever := &fakeRetriever{
		fetchFunc: func(ctx context.Context, query github.Query) ([]core.Issue, error) {
			return nil, errors.New("rate limited")
		},
	}
	pipeline := newTestPipeline(t, retriever, &fakeStrategy{}, nil)

	_, err := pipeline.Recommend(context.Background(), &core.Request{})
	assert.Error(t, err)
}

func TestRecommendInvalidRequest(t *testing.T) {
	pipeline := newTestPipeline(t, &fakeRetriever{}, &fakeStrategy{}, nil)

	_, err := pipeline.Recommend(context.Background(), nil)
	assert.ErrorIs(t, err, core.ErrInvalidRequest)

	_, err = pipeline.Recommend(context.Background(), &core.Request{PerPage: -1})
	assert.ErrorIs(t, err, core.ErrNegativePerPage)

	_, err = pipeline.Recommend(context.Background(), &core.Request{TopN: -5})
	assert.ErrorIs(t, err, core.ErrNegativeTopN)
}

// recordingMonitor captures which hooks fired.
type recordingMonitor struct {
	started   bool
	language  string
	level     core.ExperienceLevel
	cacheHits int
	fetched   int
	finished  bool
}

func (m *recordingMonitor) Start(_ *core.Request) { m.started = true }

func (m *recordingMonitor) AfterLanguageDetection(l string) { m.language = l }

func (m *recordingMonitor) AfterExperienceClassification(l core.ExperienceLevel) {
	m.level = l
}

func (m *recordingMonitor) CacheHit(_ string, _ int, _ int) { m.cacheHits++ }

func (m *recordingMonitor) AfterFetch(issues []core.Issue) { m.fetched = len(issues) }

func (m *recordingMonitor) Finish(_ *Result) { m.finished = true }

func TestRecommendWithMonitor(t *testing.T) {
	retriever := &fakeRetriever{}
	strategy := &fakeStrategy{level: core.LevelIntermediate, language: "python"}
	pipeline := newTestPipeline(t, retriever, strategy, nil)

	monitor := &recordingMonitor{}
	req := &core.Request{Profile: "django developer"}
	_, err := pipeline.RecommendWithMonitor(context.Background(), req, monitor)
	require.NoError(t, err)

	assert.True(t, monitor.started)
	assert.Equal(t, "python", monitor.language)
	assert.Equal(t, core.LevelIntermediate, monitor.level)
	assert.Equal(t, 2, monitor.fetched)
	assert.Zero(t, monitor.cacheHits)
	assert.True(t, monitor.finished)

	// Second identical request hits the cache
	monitor2 := &recordingMonitor{}
	_, err = pipeline.RecommendWithMonitor(context.Background(), &core.Request{Profile: "django developer"}, monitor2)
	require.NoError(t, err)
	assert.Equal(t, 1, monitor2.cacheHits)
	assert.Zero(t, monitor2.fetched)
}
