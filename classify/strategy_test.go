package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/issuescout/ai"
	"github.com/poiesic/issuescout/ai/mock"
	"github.com/poiesic/issuescout/core"
	"github.com/stretchr/testify/assert"
)

func TestLLMStrategyClassifyExperience(t *testing.T) {
	analyzer := mock.NewMockAnalyzer()
	analyzer.AnalyzeProfileFunc = func(ctx context.Context, text string) (ai.ProfileAnalysis, error) {
		return ai.ProfileAnalysis{ExperienceLevel: "advanced", PrimaryLanguage: "go"}, nil
	}

	strategy := NewLLMStrategy(analyzer)

	level := strategy.ClassifyExperience(context.Background(), "I architect distributed systems")
	assert.Equal(t, core.LevelAdvanced, level)

	lang := strategy.ClassifyLanguage(context.Background(), "I architect distributed systems")
	assert.Equal(t, "go", lang)
}

func TestLLMStrategyEmptyProfile(t *testing.T) {
	analyzer := mock.NewMockAnalyzer()
	strategy := NewLLMStrategy(analyzer)

	assert.Equal(t, core.LevelAny, strategy.ClassifyExperience(context.Background(), ""))
	assert.Equal(t, core.LanguageAll, strategy.ClassifyLanguage(context.Background(), ""))
	assert.Zero(t, analyzer.CallCount())
}

func TestLLMStrategyFailureDegrades(t *testing.T) {
	analyzer := mock.NewMockAnalyzer()
	analyzer.AnalyzeProfileFunc = func(ctx context.Context, text string) (ai.ProfileAnalysis, error) {
		return ai.ProfileAnalysis{}, errors.New("model unavailable")
	}

	strategy := NewLLMStrategy(analyzer)

	assert.Equal(t, core.LevelAny, strategy.ClassifyExperience(context.Background(), "profile"))
	assert.Equal(t, core.LanguageAll, strategy.ClassifyLanguage(context.Background(), "profile"))
}

func TestLLMStrategyUnknownLevelIsAny(t *testing.T) {
	analyzer := mock.NewMockAnalyzer()
	analyzer.AnalyzeProfileFunc = func(ctx context.Context, text string) (ai.ProfileAnalysis, error) {
		return ai.ProfileAnalysis{ExperienceLevel: "wizard", PrimaryLanguage: ""}, nil
	}

	strategy := NewLLMStrategy(analyzer)

	assert.Equal(t, core.LevelAny, strategy.ClassifyExperience(context.Background(), "profile"))
	assert.Equal(t, core.LanguageAll, strategy.ClassifyLanguage(context.Background(), "profile"))
}

func TestEmbeddingStrategyLanguage(t *testing.T) {
	strategy := NewEmbeddingStrategy(nil)
	assert.Equal(t, "python", strategy.ClassifyLanguage(context.Background(), "django developer"))
}
