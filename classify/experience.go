package classify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/issuescout/ai"
	"github.com/poiesic/issuescout/core"
	"github.com/poiesic/issuescout/storage"
)

// ExperienceClassifier assigns an experience level to profile text by
// comparing its embedding against per-level exemplar embeddings.
type ExperienceClassifier struct {
	embedder   ai.Embedder
	cache      storage.Cache
	modelID    string
	references map[core.ExperienceLevel][]string
	logger     *slog.Logger
}

// ExperienceOption configures an ExperienceClassifier.
type ExperienceOption func(*ExperienceClassifier)

// WithReferences replaces the default exemplar corpus.
// Levels absent from the map are skipped during classification.
func WithReferences(references map[core.ExperienceLevel][]string) ExperienceOption {
	return func(c *ExperienceClassifier) {
		c.references = references
	}
}

// NewExperienceClassifier creates a classifier backed by the given
// embedder. The cache fronts both profile and exemplar embeddings;
// modelID namespaces the exemplar cache so a model switch does not
// serve stale vectors.
func NewExperienceClassifier(embedder ai.Embedder, cache storage.Cache, modelID string, opts ...ExperienceOption) *ExperienceClassifier {
	c := &ExperienceClassifier{
		embedder:   embedder,
		cache:      cache,
		modelID:    modelID,
		references: DefaultReferences,
		logger:     slog.Default().With("component", "experience-classifier"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify determines the experience level of a profile.
//
// An empty profile is LevelAny and makes no embedding calls. Any failure
// along the way also degrades to LevelAny so the caller can proceed
// without experience filtering.
func (c *ExperienceClassifier) Classify(ctx context.Context, profile string) core.ExperienceLevel {
	if profile == "" {
		return core.LevelAny
	}

	profileEmbedding, err := c.profileEmbedding(ctx, profile)
	if err != nil {
		c.logger.Warn("profile embedding failed, skipping experience filter", "error", err)
		return core.LevelAny
	}

	best := core.LevelAny
	bestScore := float32(-1)

	for _, level := range Levels {
		if len(c.references[level]) == 0 {
			continue
		}

		refEmbeddings, err := c.referenceEmbeddings(ctx, level)
		if err != nil {
			c.logger.Warn("reference embeddings failed, skipping experience filter",
				"level", level, "error", err)
			return core.LevelAny
		}

		var total float32
		for _, ref := range refEmbeddings {
			total += core.CosineSimilarity(profileEmbedding, ref)
		}
		mean := total / float32(len(refEmbeddings))

		if mean > bestScore {
			bestScore = mean
			best = level
		}
	}

	c.logger.Debug("classified experience level", "level", best, "score", bestScore)
	return best
}

// profileEmbedding returns the embedding for profile text, cache-fronted
// by content digest. Cache read errors count as misses; cache write
// errors are logged and swallowed.
func (c *ExperienceClassifier) profileEmbedding(ctx context.Context, profile string) ([]float32, error) {
	digest := core.ProfileDigest(profile)

	cached, err := c.cache.GetProfileEmbedding(ctx, digest)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		c.logger.Warn("profile embedding cache read failed", "error", err)
	}

	embedding, err := c.embedder.EmbedText(ctx, profile)
	if err != nil {
		return nil, err
	}

	if err := c.cache.PutProfileEmbedding(ctx, digest, embedding); err != nil {
		c.logger.Warn("profile embedding cache write failed", "error", err)
	}

	return embedding, nil
}

// referenceEmbeddings returns the exemplar embeddings for a level,
// cache-fronted by (level, model).
func (c *ExperienceClassifier) referenceEmbeddings(ctx context.Context, level core.ExperienceLevel) ([][]float32, error) {
	cached, err := c.cache.GetReferenceEmbeddings(ctx, level, c.modelID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		c.logger.Warn("reference embedding cache read failed", "level", level, "error", err)
	}

	embeddings, err := c.embedder.EmbedTexts(ctx, c.references[level])
	if err != nil {
		return nil, err
	}

	if err := c.cache.PutReferenceEmbeddings(ctx, level, c.modelID, embeddings); err != nil {
		c.logger.Warn("reference embedding cache write failed", "level", level, "error", err)
	}

	return embeddings, nil
}
