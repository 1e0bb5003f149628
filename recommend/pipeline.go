package recommend

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/issuescout/classify"
	"github.com/poiesic/issuescout/core"
	"github.com/poiesic/issuescout/github"
	"github.com/poiesic/issuescout/rank"
	"github.com/poiesic/issuescout/storage"
)

// Result is the outcome of one recommendation pass.
type Result struct {
	// Language is the language the issues were fetched for, after any
	// profile-based detection.
	Language string

	// Experience is the level used for label filtering.
	Experience core.ExperienceLevel

	// Issues holds the recommended issues, most relevant first when
	// Ranked is true, in fetch order otherwise.
	Issues []*core.RankedIssue

	// Ranked reports whether similarity ranking was applied.
	// False when no profile was given or ranking failed.
	Ranked bool
}

// Pipeline orchestrates classification, retrieval, caching, and ranking
// into a single recommendation flow.
type Pipeline struct {
	retriever github.Retriever
	strategy  classify.Strategy
	ranker    *rank.Ranker
	cache     storage.Cache
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new recommendation pipeline.
func NewPipeline(
	retriever github.Retriever,
	strategy classify.Strategy,
	ranker *rank.Ranker,
	cache storage.Cache,
	opts ...Option,
) (*Pipeline, error) {
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if strategy == nil {
		return nil, ErrStrategyRequired
	}
	if ranker == nil {
		return nil, ErrRankerRequired
	}
	if cache == nil {
		return nil, ErrCacheRequired
	}

	p := &Pipeline{
		retriever: retriever,
		strategy:  strategy,
		ranker:    ranker,
		cache:     cache,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Recommend produces issue recommendations for a request.
func (p *Pipeline) Recommend(ctx context.Context, req *core.Request) (*Result, error) {
	return p.RecommendWithMonitor(ctx, req, nil)
}

// RecommendWithMonitor produces issue recommendations with monitoring.
// The monitor receives callbacks at each stage of the flow.
//
// Flow: normalize the request, detect language and experience level from
// the profile, fetch issues (cache-fronted, label-filtered by level),
// then rank by profile similarity. A ranking failure degrades to the
// unranked fetch order rather than failing the request.
func (p *Pipeline) RecommendWithMonitor(ctx context.Context, req *core.Request, monitor Monitor) (*Result, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.NormalizeRequest(req); err != nil {
		return nil, err
	}

	monitor.Start(req)

	// 1. Detect language from the profile when none was requested
	language := req.Language
	if req.Profile != "" && language == core.LanguageAll {
		language = p.strategy.ClassifyLanguage(ctx, req.Profile)
		p.logger.Debug("detected language from profile", "language", language)
		monitor.AfterLanguageDetection(language)
	}

	// 2. Classify experience level for label filtering
	experience := core.LevelAny
	if req.Profile != "" {
		experience = p.strategy.ClassifyExperience(ctx, req.Profile)
		p.logger.Debug("classified experience level", "level", experience)
		monitor.AfterExperienceClassification(experience)
	}

	// 3. Fetch issues, cache-fronted by (language, topN)
	issues, err := p.fetchIssues(ctx, language, experience, req, monitor)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Language:   language,
		Experience: experience,
	}

	// 4. Rank by profile similarity when a profile was given
	if req.Profile == "" || len(issues) == 0 {
		result.Issues = unranked(issues)
		monitor.Finish(result)
		return result, nil
	}

	ranked, err := p.ranker.Rank(ctx, req.Profile, issues)
	if err != nil {
		p.logger.Warn("ranking failed, returning issues unranked", "error", err)
		result.Issues = unranked(issues)
		monitor.Finish(result)
		return result, nil
	}

	result.Issues = ranked
	result.Ranked = true
	monitor.Finish(result)
	return result, nil
}

// fetchIssues serves an issue batch from the cache or the retriever.
// Cache read errors and cached empty batches count as misses; cache
// write errors are logged and swallowed. Retrieval errors propagate.
func (p *Pipeline) fetchIssues(ctx context.Context, language string, experience core.ExperienceLevel, req *core.Request, monitor Monitor) ([]core.Issue, error) {
	cached, err := p.cache.GetIssueBatch(ctx, language, req.TopN)
	if err == nil && len(cached) > 0 {
		p.logger.Debug("issue batch cache hit", "language", language, "topN", req.TopN)
		monitor.CacheHit(language, req.TopN, len(cached))
		return cached, nil
	}
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		p.logger.Warn("issue batch cache read failed", "error", err)
	}

	p.logger.Info("fetching fresh issues", "language", language, "level", experience)

	issues, err := p.retriever.FetchIssues(ctx, github.Query{
		Language: language,
		TopN:     req.TopN,
		PerPage:  req.PerPage,
		Labels:   classify.LabelsFor(experience),
	})
	if err != nil {
		return nil, err
	}
	monitor.AfterFetch(issues)

	if err := p.cache.PutIssueBatch(ctx, language, req.TopN, issues); err != nil {
		p.logger.Warn("issue batch cache write failed", "error", err)
	}

	return issues, nil
}

func unranked(issues []core.Issue) []*core.RankedIssue {
	out := make([]*core.RankedIssue, len(issues))
	for i := range issues {
		out[i] = &core.RankedIssue{Issue: &issues[i]}
	}
	return out
}
