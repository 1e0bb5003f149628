package storage

import (
	"context"

	"github.com/poiesic/issuescout/core"
)

// Cache provides persistent storage for embeddings and issue batches.
// Implementations must be thread-safe and support concurrent access.
//
// Embeddings are content-addressed and stay valid until explicitly
// cleared. Issue batches expire lazily: a read that finds a batch older
// than the configured TTL treats it as absent and removes it.
type Cache interface {
	// GetProfileEmbedding retrieves a cached profile embedding by digest.
	// Returns ErrNotFound if absent. Profile embeddings never expire;
	// identical text always maps to the same digest.
	GetProfileEmbedding(ctx context.Context, digest string) ([]float32, error)

	// PutProfileEmbedding stores a profile embedding keyed by digest.
	// Overwrites any existing entry.
	PutProfileEmbedding(ctx context.Context, digest string, embedding []float32) error

	// GetReferenceEmbeddings retrieves cached reference embeddings for an
	// experience level under a given embedding model.
	// Returns ErrNotFound if absent. Reference embeddings never expire.
	GetReferenceEmbeddings(ctx context.Context, level core.ExperienceLevel, modelID string) ([][]float32, error)

	// PutReferenceEmbeddings stores reference embeddings for an experience
	// level under a given embedding model.
	PutReferenceEmbeddings(ctx context.Context, level core.ExperienceLevel, modelID string, embeddings [][]float32) error

	// GetIssueBatch retrieves a cached issue batch for a (language, topN) pair.
	// Returns ErrNotFound if absent or older than the TTL.
	GetIssueBatch(ctx context.Context, language string, topN int) ([]core.Issue, error)

	// PutIssueBatch stores an issue batch for a (language, topN) pair.
	PutIssueBatch(ctx context.Context, language string, topN int, issues []core.Issue) error

	// ClearProfileEmbeddings removes all cached profile embeddings.
	ClearProfileEmbeddings(ctx context.Context) error

	// ClearReferenceEmbeddings removes all cached reference embeddings.
	ClearReferenceEmbeddings(ctx context.Context) error

	// ClearIssueBatches removes all cached issue batches.
	ClearIssueBatches(ctx context.Context) error

	// ClearAll removes every cached entry.
	ClearAll(ctx context.Context) error

	// Close closes the storage backend and releases resources.
	Close() error
}
