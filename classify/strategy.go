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


package classify

import (
	"context"
	"log/slog"

	"github.com/poiesic/issuescout/ai"
	"github.com/poiesic/issuescout/core"
)

// Strategy classifies profile text into an experience level and a
// dominant programming language. Implementations degrade to the neutral
// values (LevelAny, "all") rather than failing, so classification never
// blocks a recommendation.
type Strategy interface {
	// ClassifyExperience returns the experience level for a profile.
	ClassifyExperience(ctx context.Context, profile string) core.ExperienceLevel

	// ClassifyLanguage returns the dominant language for a profile.
	ClassifyLanguage(ctx context.Context, profile string) string
}

// EmbeddingStrategy classifies experience via exemplar embedding
// similarity and language via keyword counting.
type EmbeddingStrategy struct {
	experience *ExperienceClassifier
}

var _ Strategy = (*EmbeddingStrategy)(nil)

// NewEmbeddingStrategy creates the default classification strategy.
func NewEmbeddingStrategy(experience *ExperienceClassifier) *EmbeddingStrategy {
	return &EmbeddingStrategy{experience: experience}
}

// ClassifyExperience delegates to the embedding classifier.
func (s *EmbeddingStrategy) ClassifyExperience(ctx context.Context, profile string) core.ExperienceLevel {
	return s.experience.Classify(ctx, profile)
}

// ClassifyLanguage uses keyword matching; no model calls are made.
func (s *EmbeddingStrategy) ClassifyLanguage(ctx context.Context, profile string) string {
	return DetectLanguage(profile)
}

// LLMStrategy classifies both experience level and language by asking a
// chat model to analyze the profile.
type LLMStrategy struct {
	analyzer ai.ProfileAnalyzer
	logger   *slog.Logger
}

var _ Strategy = (*LLMStrategy)(nil)

// NewLLMStrategy creates a strategy backed by a profile analyzer.
func NewLLMStrategy(analyzer ai.ProfileAnalyzer) *LLMStrategy {
	return &LLMStrategy{
		analyzer: analyzer,
		logger:   slog.Default().With("component", "llm-classifier"),
	}
}

// ClassifyExperience asks the model for the profile's experience level.
// Analyzer failures degrade to LevelAny.
func (s *LLMStrategy) ClassifyExperience(ctx context.Context, profile string) core.ExperienceLevel {
	if profile == "" {
		return core.LevelAny
	}

	analysis, err := s.analyzer.AnalyzeProfile(ctx, profile)
	if err != nil {
		s.logger.Warn("profile analysis failed, skipping experience filter", "error", err)
		return core.LevelAny
	}

	switch analysis.ExperienceLevel {
	case string(core.LevelBeginner):
		return core.LevelBeginner
	case string(core.LevelIntermediate):
		return core.LevelIntermediate
	case string(core.LevelAdvanced):
		return core.LevelAdvanced
	default:
		return core.LevelAny
	}
}

// ClassifyLanguage asks the model for the profile's dominant language.
// Analyzer failures degrade to "all".
func (s *LLMStrategy) ClassifyLanguage(ctx context.Context, profile string) string {
	if profile == "" {
		return core.LanguageAll
	}

	analysis, err := s.analyzer.AnalyzeProfile(ctx, profile)
	if err != nil {
		s.logger.Warn("profile analysis failed, skipping language filter", "error", err)
		return core.LanguageAll
	}

	if analysis.PrimaryLanguage == "" {
		return core.LanguageAll
	}
	return analysis.PrimaryLanguage
}
