package ai

// ExperienceLevels defines the valid experience labels a profile analyzer
// may return, in increasing order of experience.
var ExperienceLevels = []string{
	"beginner",
	"intermediate",
	"advanced",
}

// KnownLanguages defines the language tags a profile analyzer may return.
// "all" is additionally valid and means no language could be identified.
var KnownLanguages = []string{
	"python",
	"javascript",
	"typescript",
	"java",
	"go",
	"rust",
	"ruby",
	"php",
	"c++",
	"csharp",
	"swift",
	"kotlin",
}
