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


// Package storage defines the cache abstraction and serialization helpers.
//
// The Cache interface fronts an embedded key-value store with three
// namespaces: profile embeddings (keyed by content digest), reference
// embeddings (keyed by experience level and embedding model), and issue
// batches (keyed by language and result count). Embedding entries are
// content-addressed and never expire. Issue batches carry a write
// timestamp and expire after a fixed TTL; expiry is evaluated lazily on
// read rather than by a background sweeper.
//
// Serialization uses the MUS format via serializers defined in the core
// package. The helpers in this package wrap marshal/unmarshal with
// buffer management so backends only deal in byte slices.
//
// The badger subpackage provides the BadgerDB-backed implementation.
package storage
