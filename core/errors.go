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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRequest indicates a Request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNegativePerPage indicates a negative per-page value.
	ErrNegativePerPage = errors.New("per-page cannot be negative")

	// ErrNegativeTopN indicates a negative top-n value.
	ErrNegativeTopN = errors.New("top-n cannot be negative")

	// ErrModelMismatch indicates a requested model differs from the
	// model the recommender was configured with.
	ErrModelMismatch = errors.New("requested model does not match configured model")
)
