package mock

import (
	"context"
	"strings"

	"github.com/poiesic/issuescout/ai"
)

// MockAnalyzer is a test double for ai.ProfileAnalyzer.
// It allows custom behavior injection via function fields.
type MockAnalyzer struct {
	// AnalyzeProfileFunc is called by AnalyzeProfile if set.
	// If nil, uses default keyword heuristics.
	AnalyzeProfileFunc func(ctx context.Context, text string) (ai.ProfileAnalysis, error)

	callCount int
}

// NewMockAnalyzer creates a mock analyzer with default heuristic behavior.
// Note: Returns concrete type to allow test assertions via GetMockAnalyzer().
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

// AnalyzeProfile classifies a profile with simple keyword heuristics.
// Default behavior: the first known language mentioned wins, and the level
// is guessed from a handful of signal words.
func (m *MockAnalyzer) AnalyzeProfile(ctx context.Context, text string) (ai.ProfileAnalysis, error) {
	m.callCount++

	if m.AnalyzeProfileFunc != nil {
		return m.AnalyzeProfileFunc(ctx, text)
	}

	lowered := strings.ToLower(text)

	language := "all"
	for _, lang := range ai.KnownLanguages {
		if strings.Contains(lowered, lang) {
			language = lang
			break
		}
	}

	level := "intermediate"
	switch {
	case strings.Contains(lowered, "started") || strings.Contains(lowered, "learning") || strings.Contains(lowered, "new to"):
		level = "beginner"
	case strings.Contains(lowered, "architect") || strings.Contains(lowered, "lead") || strings.Contains(lowered, "expert"):
		level = "advanced"
	}

	return ai.ProfileAnalysis{
		ExperienceLevel: level,
		PrimaryLanguage: language,
	}, nil
}

// CallCount returns the number of times AnalyzeProfile was called.
func (m *MockAnalyzer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockAnalyzer) Reset() {
	m.callCount = 0
	m.AnalyzeProfileFunc = nil
}
