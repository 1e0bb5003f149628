package rank

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"

	"github.com/poiesic/issuescout/ai"
	"github.com/poiesic/issuescout/core"
	"github.com/poiesic/issuescout/storage"
)

// Ranker orders issues by embedding similarity to a profile.
type Ranker struct {
	embedder ai.Embedder
	cache    storage.Cache
	logger   *slog.Logger
}

// NewRanker creates a ranker. The cache fronts profile embeddings;
// issue embeddings are always computed fresh since batches change
// between fetches.
func NewRanker(embedder ai.Embedder, cache storage.Cache) *Ranker {
	return &Ranker{
		embedder: embedder,
		cache:    cache,
		logger:   slog.Default().With("component", "ranker"),
	}
}

// Rank scores each issue by cosine similarity between the profile
// embedding and the issue's title+body embedding, then orders the result
// from most to least similar. Equal scores keep their fetch order.
//
// An empty issue list returns an empty result without any model calls.
func (r *Ranker) Rank(ctx context.Context, profile string, issues []core.Issue) ([]*core.RankedIssue, error) {
	if len(issues) == 0 {
		return []*core.RankedIssue{}, nil
	}

	profileEmbedding, err := r.profileEmbedding(ctx, profile)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(issues))
	for i := range issues {
		texts[i] = issues[i].Text()
	}

	issueEmbeddings, err := r.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, err
	}

	ranked := make([]*core.RankedIssue, len(issues))
	for i := range issues {
		var similarity float32
		if i < len(issueEmbeddings) {
			similarity = roundScore(core.CosineSimilarity(profileEmbedding, issueEmbeddings[i]))
		}
		ranked[i] = &core.RankedIssue{
			Issue:      &issues[i],
			Similarity: similarity,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity > ranked[j].Similarity
	})

	return ranked, nil
}

// profileEmbedding returns the embedding for profile text, cache-fronted
// by content digest. Cache read errors count as misses; cache write
// errors are logged and swallowed.
func (r *Ranker) profileEmbedding(ctx context.Context, profile string) ([]float32, error) {
	digest := core.ProfileDigest(profile)

	cached, err := r.cache.GetProfileEmbedding(ctx, digest)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		r.logger.Warn("profile embedding cache read failed", "error", err)
	}

	embedding, err := r.embedder.EmbedText(ctx, profile)
	if err != nil {
		return nil, err
	}

	if err := r.cache.PutProfileEmbedding(ctx, digest, embedding); err != nil {
		r.logger.Warn("profile embedding cache write failed", "error", err)
	}

	return embedding, nil
}

// roundScore rounds a similarity to four decimal places for stable,
// presentable scores.
func roundScore(score float32) float32 {
	return float32(math.Round(float64(score)*10000) / 10000)
}
