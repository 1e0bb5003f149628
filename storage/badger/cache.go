package badger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/issuescout/core"
	"github.com/poiesic/issuescout/storage"
)

// DefaultTTL is how long an issue batch stays valid after it was written.
// A batch aged exactly DefaultTTL is still served; only strictly older
// batches are expired.
const DefaultTTL = time.Hour

// Store implements storage.Cache for BadgerDB.
//
// Embeddings are content-addressed (profile digest, or level+model) and
// never expire; they stay valid until explicitly cleared. Issue batches
// carry a companion stamp key recording the write time, and reads drop
// batches that outlived the TTL.
type Store struct {
	backend *Backend
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

var _ storage.Cache = (*Store)(nil)

// NewStore creates a cache store on top of a backend.
//
// Returns storage.Cache to keep callers on the interface.
func NewStore(backend *Backend) (storage.Cache, error) {
	return newStore(backend), nil
}

func newStore(backend *Backend) *Store {
	return &Store{
		backend: backend,
		ttl:     DefaultTTL,
		now:     time.Now,
		logger:  slog.Default().With("component", "cache"),
	}
}

// Close releases resources. The backend is owned by the caller.
func (s *Store) Close() error {
	return nil
}

// GetProfileEmbedding retrieves a cached profile embedding by digest.
// Profile embeddings are content-addressed and do not expire.
func (s *Store) GetProfileEmbedding(ctx context.Context, digest string) ([]float32, error) {
	data, err := s.get(makeProfileEmbeddingKey(digest))
	if err != nil {
		return nil, err
	}
	return storage.UnmarshalEmbedding(data)
}

// PutProfileEmbedding stores a profile embedding keyed by digest.
func (s *Store) PutProfileEmbedding(ctx context.Context, digest string, embedding []float32) error {
	return s.put(makeProfileEmbeddingKey(digest), storage.MarshalEmbedding(embedding))
}

// GetReferenceEmbeddings retrieves cached reference embeddings for a level.
// Reference embeddings are keyed by (level, model) and do not expire.
func (s *Store) GetReferenceEmbeddings(ctx context.Context, level core.ExperienceLevel, modelID string) ([][]float32, error) {
	data, err := s.get(makeReferenceEmbeddingKey(level, modelID))
	if err != nil {
		return nil, err
	}
	return storage.UnmarshalEmbeddingList(data)
}

// PutReferenceEmbeddings stores reference embeddings for a level.
func (s *Store) PutReferenceEmbeddings(ctx context.Context, level core.ExperienceLevel, modelID string, embeddings [][]float32) error {
	return s.put(makeReferenceEmbeddingKey(level, modelID), storage.MarshalEmbeddingList(embeddings))
}

// GetIssueBatch retrieves a cached issue batch for a (language, topN) pair.
// Batches older than the TTL are removed and reported as ErrNotFound.
func (s *Store) GetIssueBatch(ctx context.Context, language string, topN int) ([]core.Issue, error) {
	data, err := s.getFresh(makeIssueBatchKey(language, topN))
	if err != nil {
		return nil, err
	}
	return storage.UnmarshalIssues(data)
}

// PutIssueBatch stores an issue batch for a (language, topN) pair.
func (s *Store) PutIssueBatch(ctx context.Context, language string, topN int, issues []core.Issue) error {
	return s.putStamped(makeIssueBatchKey(language, topN), storage.MarshalIssues(issues))
}

// ClearProfileEmbeddings removes all cached profile embeddings.
func (s *Store) ClearProfileEmbeddings(ctx context.Context) error {
	return s.backend.DropPrefix([]byte(profileEmbeddingPrefix + ":"))
}

// ClearReferenceEmbeddings removes all cached reference embeddings.
func (s *Store) ClearReferenceEmbeddings(ctx context.Context) error {
	return s.backend.DropPrefix([]byte(referenceEmbeddingPrefix + ":"))
}

// ClearIssueBatches removes all cached issue batches.
func (s *Store) ClearIssueBatches(ctx context.Context) error {
	return s.backend.DropPrefix([]byte(issueBatchPrefix + ":"))
}

// ClearAll removes every cached entry.
func (s *Store) ClearAll(ctx context.Context) error {
	return s.backend.DropPrefix(
		[]byte(profileEmbeddingPrefix+":"),
		[]byte(referenceEmbeddingPrefix+":"),
		[]byte(issueBatchPrefix+":"),
	)
}

// put stores a value with no stamp. The entry never expires.
func (s *Store) put(key, value []byte) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// get reads a value without any freshness check.
func (s *Store) get(key []byte) ([]byte, error) {
	var value []byte
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// putStamped stores a value and its stamp in a single transaction.
// The value is written before the stamp so a torn write reads as stampless.
func (s *Store) putStamped(key, value []byte) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(key, value); err != nil {
			return err
		}
		stamp := storage.MarshalTimestamp(s.now().UTC().Unix())
		if err := tx.Set(makeStampKey(key), stamp); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// getFresh reads a value if its stamp exists and is within the TTL.
// Expired or stampless entries are removed and reported as ErrNotFound.
func (s *Store) getFresh(key []byte) ([]byte, error) {
	var value []byte
	stale := false

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		stampItem, err := tx.Get(makeStampKey(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		var writtenAt int64
		err = stampItem.Value(func(val []byte) error {
			var err error
			writtenAt, err = storage.UnmarshalTimestamp(val)
			return err
		})
		if err != nil {
			stale = true
			return storage.ErrNotFound
		}

		age := s.now().UTC().Unix() - writtenAt
		if age > int64(s.ttl/time.Second) {
			stale = true
			return storage.ErrNotFound
		}

		item, err := tx.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			stale = true
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	}, false)

	if stale {
		s.removeEntry(key)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// removeEntry deletes a value and its stamp. Failures are logged, not
// surfaced; the next read will retry the cleanup.
func (s *Store) removeEntry(key []byte) {
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(key); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		stampKey := makeStampKey(key)
		if err := tx.Delete(stampKey); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		s.logger.Warn("failed to remove expired entry", "key", string(key), "error", err)
	}
}
