package core

import (
	"encoding/hex"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ProfileDigest generates a deterministic content digest for profile text
// using BLAKE2b hashing. Identical text always produces an identical digest,
// which makes it usable as a content-addressed cache key.
func ProfileDigest(text string) string {
	h, _ := blake2b.New(32, nil)
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// ExperienceLevel classifies a developer's programming experience.
type ExperienceLevel string

const (
	// LevelBeginner represents developers just starting out.
	LevelBeginner ExperienceLevel = "beginner"
	// LevelIntermediate represents developers with some production experience.
	LevelIntermediate ExperienceLevel = "intermediate"
	// LevelAdvanced represents developers with deep architectural experience.
	LevelAdvanced ExperienceLevel = "advanced"
	// LevelAny is the neutral fallback. It applies no issue-label filtering.
	LevelAny ExperienceLevel = "any"
)

// LanguageAll is the neutral language tag meaning "no language filter".
const LanguageAll = "all"

// Issue represents a single open-source issue fetched from the tracker.
type Issue struct {
	Title string
	Body  string
	URL   string
	Repo  string // repository identifier, e.g. "golang/go"
}

// Text returns the issue's title and body concatenated into one trimmed
// string, the form used for embedding.
func (i *Issue) Text() string {
	return strings.TrimSpace(strings.TrimSpace(i.Title) + " " + strings.TrimSpace(i.Body))
}

// RankedIssue is an issue augmented with its cosine similarity to the
// developer profile, rounded to 4 decimal digits.
type RankedIssue struct {
	Issue      *Issue
	Similarity float32
}

// Request holds the parameters of a single recommendation request.
// Zero values for Language, PerPage and TopN select the documented defaults.
type Request struct {
	Language string // requested language, "all" means detect from profile
	PerPage  int    // upper bound on returned issues, clamped to [1,100]
	TopN     int    // number of top-starred repositories to scan, clamped to [1,100]
	Profile  string // free-text developer profile; empty disables classification and ranking
	Model    string // embedding model id; empty selects the configured default
}
