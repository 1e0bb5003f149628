package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/issuescout/ai"
)

const analysisResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "experience_level": {
      "type": "string",
      "enum": [%s]
    },
    "primary_language": {
      "type": "string"
    }
  },
  "required": ["experience_level", "primary_language"],
  "additionalProperties": false
}`

const analysisPromptTemplate = `Classify the given developer profile and return the result as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- experience_level must be exactly one of: %s. Judge from the depth of experience described, not from enthusiasm.
- primary_language must be the single programming language the profile centers on, lowercase, one of: %s. Frameworks count toward their language (react is javascript, django is python, rails is ruby).
- If no programming language is mentioned or clearly implied, use "all".
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "I just started learning Python last month and finished my first tutorial"
Output:
{"experience_level":"beginner","primary_language":"python"}

Example (framework implies language):
Input: "shipped several production React apps and mentor juniors on our frontend team"
Output:
{"experience_level":"intermediate","primary_language":"javascript"}

Example (no language mentioned):
Input: "architect distributed systems handling millions of transactions"
Output:
{"experience_level":"advanced","primary_language":"all"}`

// buildSystemPrompt creates the system prompt with the allowed label sets embedded.
func buildSystemPrompt() string {
	quoted := make([]string, len(ai.ExperienceLevels))
	for i, level := range ai.ExperienceLevels {
		quoted[i] = fmt.Sprintf("%q", level)
	}
	return fmt.Sprintf(analysisPromptTemplate,
		fmt.Sprintf(analysisResponseSchema, strings.Join(quoted, ", ")),
		strings.Join(ai.ExperienceLevels, ", "),
		strings.Join(ai.KnownLanguages, ", "))
}
