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


// Package recommend orchestrates the full recommendation flow.
//
// Given a request with optional profile text, the pipeline detects the
// profile's dominant language and experience level, fetches matching
// open issues from the retriever (with a TTL cache in front), and ranks
// them by embedding similarity to the profile.
//
// Degradation is deliberate at every stage: classification failures
// widen the search instead of blocking it, and a ranking failure falls
// back to the unranked fetch order. Only request validation errors and
// retrieval errors surface to the caller.
package recommend
