package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the types persisted in the cache. The cached value
// set is small and fixed (embeddings, issue batches, timestamps), so the
// serializers are written by hand rather than generated.

// EmbeddingMUS serializes a single embedding vector.
var EmbeddingMUS = ord.NewSliceSer[float32](raw.Float32)

// EmbeddingListMUS serializes an ordered sequence of embedding vectors,
// one per reference exemplar.
var EmbeddingListMUS = ord.NewSliceSer[[]float32](EmbeddingMUS)

// TimestampMUS serializes a Unix timestamp in seconds.
var TimestampMUS = varint.Int64

// IssueMUS serializes an Issue.
var IssueMUS = issueMUS{}

// IssueSliceMUS serializes a batch of issues.
var IssueSliceMUS = ord.NewSliceSer[Issue](IssueMUS)

type issueMUS struct{}

func (s issueMUS) Marshal(v Issue, bs []byte) (n int) {
	n = ord.String.Marshal(v.Title, bs)
	n += ord.String.Marshal(v.Body, bs[n:])
	n += ord.String.Marshal(v.URL, bs[n:])
	n += ord.String.Marshal(v.Repo, bs[n:])
	return
}

func (s issueMUS) Unmarshal(bs []byte) (v Issue, n int, err error) {
	var n1 int
	v.Title, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Body, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Repo, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s issueMUS) Size(v Issue) (size int) {
	size = ord.String.Size(v.Title)
	size += ord.String.Size(v.Body)
	size += ord.String.Size(v.URL)
	size += ord.String.Size(v.Repo)
	return
}

func (s issueMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for range 4 {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}
