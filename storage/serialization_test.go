package storage

import (
	"testing"

	"github.com/poiesic/issuescout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingRoundTrip(t *testing.T) {
	original := []float32{0.1, -0.5, 0.9999, 0, 42.5}

	data := MarshalEmbedding(original)
	decoded, err := UnmarshalEmbedding(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestEmbeddingEmpty(t *testing.T) {
	data := MarshalEmbedding([]float32{})
	decoded, err := UnmarshalEmbedding(data)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestEmbeddingListRoundTrip(t *testing.T) {
	original := [][]float32{
		{1, 2, 3},
		{-0.25, 0.75},
		{},
	}

	data := MarshalEmbeddingList(original)
	decoded, err := UnmarshalEmbeddingList(data)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.Equal(t, original[0], decoded[0])
	assert.Equal(t, original[1], decoded[1])
	assert.Empty(t, decoded[2])
}

func TestIssuesRoundTrip(t *testing.T) {
	original := []core.Issue{
		{
			Title: "Fix flaky websocket reconnect",
			Body:  "The client drops the connection under load.",
			URL:   "https://github.com/acme/gateway/issues/42",
			Repo:  "acme/gateway",
		},
		{
			Title: "Add pagination to /users",
			Body:  "",
			URL:   "https://github.com/acme/api/issues/7",
			Repo:  "acme/api",
		},
	}

	data := MarshalIssues(original)
	decoded, err := UnmarshalIssues(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestTimestampRoundTrip(t *testing.T) {
	original := int64(1735689600)

	data := MarshalTimestamp(original)
	decoded, err := UnmarshalTimestamp(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestUnmarshalEmbeddingTruncated(t *testing.T) {
	data := MarshalEmbedding([]float32{1, 2, 3})
	_, err := UnmarshalEmbedding(data[:len(data)-2])
	assert.Error(t, err)
}
