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

import "fmt"

// Request defaults and bounds.
const (
	DefaultPerPage = 20
	DefaultTopN    = 100
	MaxPerPage     = 100
	MaxTopN        = 100
)

// NormalizeRequest validates a Request and applies defaults and clamping.
//
// Rules:
//   - Language defaults to "all" when empty
//   - PerPage defaults to 20 when zero, is clamped to at most 100
//   - TopN defaults to 100 when zero, is clamped to at most 100
//   - negative PerPage or TopN are invalid request parameters
//
// The request is modified in place.
func NormalizeRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}

	if req.PerPage < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrNegativePerPage)
	}
	if req.TopN < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrNegativeTopN)
	}

	if req.Language == "" {
		req.Language = LanguageAll
	}
	if req.PerPage == 0 {
		req.PerPage = DefaultPerPage
	}
	if req.TopN == 0 {
		req.TopN = DefaultTopN
	}
	if req.PerPage > MaxPerPage {
		req.PerPage = MaxPerPage
	}
	if req.TopN > MaxTopN {
		req.TopN = MaxTopN
	}

	return nil
}

// ValidateLevel checks that an ExperienceLevel has a known value.
func ValidateLevel(level ExperienceLevel) error {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelAny:
		return nil
	}
	return fmt.Errorf("%w: unknown experience level %q", ErrInvalidRequest, level)
}
