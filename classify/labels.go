package classify

import "github.com/poiesic/issuescout/core"

// LevelLabels maps experience levels to the GitHub issue labels that
// typically mark work at that level. Label matching is case-insensitive.
var LevelLabels = map[core.ExperienceLevel][]string{
	core.LevelBeginner: {
		"good first issue",
		"good-first-issue",
		"beginner-friendly",
		"beginner",
		"starter",
		"easy",
		"easy-fix",
		"getting-started",
		"junior",
		"newbie",
		"entry-level",
		"first-timers-only",
		"low-hanging-fruit",
		"simple",
		"bite-sized",
		"documentation",
		"help-wanted",
		"newcomer",
		"student-friendly",
		"learning",
	},
	core.LevelIntermediate: {
		"intermediate",
		"medium",
		"medium-difficulty",
		"help wanted",
		"help-wanted",
		"bug",
		"feature-request",
		"feature",
		"enhancement",
		"improvement",
		"optimization",
		"refactor",
		"test",
		"testing",
		"unit-test",
		"integration-test",
		"ci/cd",
		"documentation-needed",
		"code-review",
		"type: bug",
		"type: feature",
		"priority: medium",
	},
	core.LevelAdvanced: {
		"advanced",
		"hard",
		"complex",
		"difficult",
		"challenging",
		"performance",
		"performance-optimization",
		"architecture",
		"design",
		"refactor-major",
		"scalability",
		"concurrency",
		"security",
		"infrastructure",
		"devops",
		"critical",
		"priority: high",
		"priority: critical",
		"breaking-change",
		"senior",
		"expert-level",
		"deep-knowledge",
		"system-design",
		"large-refactor",
		"type: performance",
		"type: architecture",
	},
}

// LabelsFor returns the label set for a level, or nil for "any" and
// unknown levels. A nil result means no label filtering.
func LabelsFor(level core.ExperienceLevel) []string {
	return LevelLabels[level]
}
