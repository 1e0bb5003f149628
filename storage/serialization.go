// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/poiesic/issuescout/core"
)

// MarshalEmbedding serializes an embedding vector to bytes.
func MarshalEmbedding(embedding []float32) []byte {
	buf := make([]byte, core.EmbeddingMUS.Size(embedding))
	core.EmbeddingMUS.Marshal(embedding, buf)
	return buf
}

// UnmarshalEmbedding deserializes an embedding vector from bytes.
func UnmarshalEmbedding(data []byte) ([]float32, error) {
	embedding, _, err := core.EmbeddingMUS.Unmarshal(data)
	return embedding, err
}

// MarshalEmbeddingList serializes a list of embedding vectors to bytes.
func MarshalEmbeddingList(embeddings [][]float32) []byte {
	buf := make([]byte, core.EmbeddingListMUS.Size(embeddings))
	core.EmbeddingListMUS.Marshal(embeddings, buf)
	return buf
}

// UnmarshalEmbeddingList deserializes a list of embedding vectors from bytes.
func UnmarshalEmbeddingList(data []byte) ([][]float32, error) {
	embeddings, _, err := core.EmbeddingListMUS.Unmarshal(data)
	return embeddings, err
}

// MarshalIssues serializes an issue batch to bytes.
func MarshalIssues(issues []core.Issue) []byte {
	buf := make([]byte, core.IssueSliceMUS.Size(issues))
	core.IssueSliceMUS.Marshal(issues, buf)
	return buf
}

// UnmarshalIssues deserializes an issue batch from bytes.
func UnmarshalIssues(data []byte) ([]core.Issue, error) {
	issues, _, err := core.IssueSliceMUS.Unmarshal(data)
	return issues, err
}

// MarshalTimestamp serializes a Unix timestamp to bytes.
func MarshalTimestamp(ts int64) []byte {
	buf := make([]byte, core.TimestampMUS.Size(ts))
	core.TimestampMUS.Marshal(ts, buf)
	return buf
}

// UnmarshalTimestamp deserializes a Unix timestamp from bytes.
func UnmarshalTimestamp(data []byte) (int64, error) {
	ts, _, err := core.TimestampMUS.Unmarshal(data)
	return ts, err
}
