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


// Package github retrieves open issues from the GitHub REST API.
//
// Retrieval works in two phases: a repository search ordered by stars,
// then an issue listing per repository until enough issues are gathered.
// Pull requests are excluded, and an optional label set narrows issues
// to those matching a difficulty tier.
//
// Authentication uses the GITHUB_TOKEN environment variable when
// present. Unauthenticated clients are limited to scanning fewer
// repositories to stay inside GitHub's anonymous rate limits.
package github
