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


// Package classify infers an experience level and a dominant programming
// language from free-form profile text.
//
// Two strategies are available behind the Strategy interface:
//
//   - EmbeddingStrategy: the default. Experience level is the level whose
//     exemplar phrases the profile is most similar to on average (cosine
//     similarity over embeddings); language comes from keyword counting.
//   - LLMStrategy: asks a chat model to analyze the profile instead.
//
// Both strategies degrade to the neutral answers — LevelAny and "all" —
// when classification fails, so a broken model never blocks a
// recommendation; it only widens it.
//
// The package also owns the level-to-GitHub-label tables used downstream
// to filter issues by difficulty.
package classify
