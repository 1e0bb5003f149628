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


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/issuescout/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ProfileAnalyzer implements ai.ProfileAnalyzer using OpenAI-compatible chat APIs.
type ProfileAnalyzer struct {
	client llms.Model
	logger *slog.Logger
}

// analysis is the structure expected from the LLM's JSON response.
type analysis struct {
	ExperienceLevel string `json:"experience_level"`
	PrimaryLanguage string `json:"primary_language"`
}

// newProfileAnalyzer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newProfileAnalyzer(config *ai.Config) (*ProfileAnalyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/classification
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken("none"),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &ProfileAnalyzer{
		client: client,
		logger: slog.Default().With("component", "openai-analyzer"),
	}, nil
}

// NewProfileAnalyzer creates a new profile analyzer using the provided configuration.
//
// Returns ai.ProfileAnalyzer interface to enforce abstraction.
func NewProfileAnalyzer(config *ai.Config) (ai.ProfileAnalyzer, error) {
	return newProfileAnalyzer(config)
}

// AnalyzeProfile classifies a developer profile using an LLM.
// The model is asked for a JSON object carrying the experience level and
// primary language; malformed responses are repaired and retried.
func (a *ProfileAnalyzer) AnalyzeProfile(ctx context.Context, text string) (ai.ProfileAnalysis, error) {
	// Scrub input text
	text = scrubString(text)

	// Build the system and user prompts
	systemPrompt := buildSystemPrompt()
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result analysis
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return ai.ProfileAnalysis{}, err
		}

		if len(response.Choices) < 1 {
			a.logger.Debug("no choices returned from model")
			return ai.ProfileAnalysis{}, fmt.Errorf("no choices returned from model")
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing analyzer response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		a.logger.Error("failed to parse analyzer response after retries", "err", lastErr)
		return ai.ProfileAnalysis{}, lastErr
	}

	// Normalize and validate against the allowed value sets
	level := strings.ToLower(strings.TrimSpace(result.ExperienceLevel))
	if !slices.Contains(ai.ExperienceLevels, level) {
		return ai.ProfileAnalysis{}, fmt.Errorf("model returned unknown experience level %q", result.ExperienceLevel)
	}

	language := strings.ToLower(strings.TrimSpace(result.PrimaryLanguage))
	if language != "all" && !slices.Contains(ai.KnownLanguages, language) {
		a.logger.Debug("model returned unknown language, falling back to all", "language", language)
		language = "all"
	}

	a.logger.Debug("analyzed profile", "level", level, "language", language)

	return ai.ProfileAnalysis{
		ExperienceLevel: level,
		PrimaryLanguage: language,
	}, nil
}
