package badger

import (
	"fmt"

	"github.com/poiesic/issuescout/core"
)

// Key prefixes for the cache namespaces
const (
	profileEmbeddingPrefix   = "proemb"
	referenceEmbeddingPrefix = "refemb"
	issueBatchPrefix         = "issbat"

	// stampSuffix marks the companion key holding an entry's write time.
	stampSuffix = ":ts"
)

// makeProfileEmbeddingKey generates a key for a profile embedding by digest.
func makeProfileEmbeddingKey(digest string) []byte {
	return []byte(fmt.Sprintf("%s:%s", profileEmbeddingPrefix, digest))
}

// makeReferenceEmbeddingKey generates a key for reference embeddings.
// Format: prefix:level:modelID
func makeReferenceEmbeddingKey(level core.ExperienceLevel, modelID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", referenceEmbeddingPrefix, level, modelID))
}

// makeIssueBatchKey generates a key for an issue batch.
// Format: prefix:language:topN
func makeIssueBatchKey(language string, topN int) []byte {
	return []byte(fmt.Sprintf("%s:%s:%d", issueBatchPrefix, language, topN))
}

// makeStampKey generates the timestamp key paired with a value key.
func makeStampKey(valueKey []byte) []byte {
	stamp := make([]byte, 0, len(valueKey)+len(stampSuffix))
	stamp = append(stamp, valueKey...)
	return append(stamp, stampSuffix...)
}
