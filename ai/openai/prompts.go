package openai

import (
	"fmt"
	"strings"
)

const analysisResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "summary": {
      "type": "string"
    },
    "category": {
      "type": "string"
    },
    "keywords": {
      "type": "array",
      "items": {"type": "string"},
      "maxItems": 5
    }
  },
  "required": ["summary", "category", "keywords"],
  "additionalProperties": false
}`

const analysisPromptTemplate = `Summarize the given text, classify its topic and extract its keywords. Return the result as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- The summary must be at most %d characters. %s
- The category must be exactly one of the listed values: %s. If none fits, use "%s".
- Keywords: up to 5 distinct words or short phrases, most relevant first, in the language of the text.
- Use only information from the text. Do not hallucinate.
- The text may contain a web page's visible text followed by text read from its images and a transcript of its audio.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "The Eiffel Tower is a famous landmark in Paris. Tickets to the summit sell out weeks ahead in summer."
Output:
{
  "summary": "Eiffel Tower summit tickets in Paris sell out weeks ahead in summer.",
  "category": "travel",
  "keywords": ["eiffel tower", "paris", "tickets", "summer"]
}`

const ocrPrompt = `Transcribe all text visible in this image exactly as written, preserving line breaks.
Output only the transcribed text. Do not describe the image. If the image contains no text, output nothing.`

// buildAnalysisPrompt creates the system prompt with the label set embedded.
func buildAnalysisPrompt(categories []string, maxSummary int, language string) string {
	languageRule := "Write it in the same language as the text."
	if language != "" {
		languageRule = fmt.Sprintf("Write it in %s.", language)
	}

	fallback := ""
	if len(categories) > 0 {
		fallback = categories[len(categories)-1]
	}

	return fmt.Sprintf(analysisPromptTemplate,
		analysisResponseSchema,
		maxSummary,
		languageRule,
		strings.Join(categories, ", "),
		fallback)
}
