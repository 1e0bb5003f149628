package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// scoring. Implementations must be thread-safe for concurrent use and
// deterministic for a fixed (text, model) pair.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ProfileAnalyzer classifies a developer profile with a language model.
// It is the alternative to the embedding-based classification strategy.
// Implementations must be thread-safe for concurrent use.
type ProfileAnalyzer interface {
	// AnalyzeProfile reads free-text profile text and returns the
	// detected experience level and primary programming language.
	// Returns an error if the analysis fails; callers are expected to
	// degrade to neutral labels rather than abort.
	AnalyzeProfile(ctx context.Context, text string) (ProfileAnalysis, error)
}

// ProfileAnalysis is the result of LLM-based profile classification.
type ProfileAnalysis struct {
	// ExperienceLevel is one of the values in ExperienceLevels.
	ExperienceLevel string

	// PrimaryLanguage is the detected programming language tag in
	// lowercase, or "all" when none could be identified.
	PrimaryLanguage string
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and ProfileAnalyzer instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// ProfileAnalyzer returns the LLM-based profile classification service.
	// The returned ProfileAnalyzer is safe for concurrent use.
	ProfileAnalyzer() ProfileAnalyzer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
