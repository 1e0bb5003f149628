package classify

import "strings"

// languageEntry pairs a canonical language name with the keywords that
// signal it in free-form profile text.
type languageEntry struct {
	name     string
	keywords []string
}

// languageTable is ordered: when two languages score equally, the earlier
// entry wins.
var languageTable = []languageEntry{
	{"python", []string{"python", "django", "flask", "fastapi", "pytorch", "tensorflow", "pandas", "numpy"}},
	{"javascript", []string{"javascript", "js", "react", "vue", "angular", "node.js", "nodejs", "express"}},
	{"typescript", []string{"typescript", "ts"}},
	{"java", []string{"java", "spring", "spring boot", "maven", "gradle"}},
	{"go", []string{"golang", "go"}},
	{"rust", []string{"rust"}},
	{"ruby", []string{"ruby", "rails", "ruby on rails"}},
	{"php", []string{"php", "laravel", "symfony"}},
	{"c++", []string{"c++", "cpp"}},
	{"csharp", []string{"c#", "csharp", ".net", "dotnet", "asp.net"}},
	{"swift", []string{"swift", "ios", "swiftui"}},
	{"kotlin", []string{"kotlin", "android"}},
}

// DetectLanguage extracts the dominant programming language from profile
// text by counting keyword mentions. Returns "all" when the profile is
// empty or mentions no known language.
func DetectLanguage(profile string) string {
	if profile == "" {
		return "all"
	}

	lowered := strings.ToLower(profile)

	best := "all"
	bestScore := 0
	for _, entry := range languageTable {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = entry.name
		}
	}

	return best
}
