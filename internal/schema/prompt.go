package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var codeBlockPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)```json\\s*\\n(.+?)```"),
	regexp.MustCompile("(?s)```\\s*\\n(.+?)```"),
}

// Instructions is the text appended to a rendered prompt so the model
// answers with a single JSON object matching the schema.
func (s Schema) Instructions() string {
	raw, err := json.MarshalIndent(map[string]interface{}(s), "", "  ")
	if err != nil {
		return ""
	}

	return fmt.Sprintf("\n\nRespond ONLY with a JSON object that matches this JSON Schema. "+
		"Do not add explanations or markdown outside the JSON.\n%s", raw)
}

// ExtractJSON pulls a JSON value out of a model response that may wrap it
// in prose or a markdown code block.
func ExtractJSON(response string) (interface{}, error) {
	response = strings.TrimSpace(response)

	var data interface{}
	if err := json.Unmarshal([]byte(response), &data); err == nil {
		return data, nil
	}

	if extracted := extractFromCodeBlock(response); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), &data); err == nil {
			return data, nil
		}
	}

	if extracted := extractJSONFromText(response); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), &data); err == nil {
			return data, nil
		}
	}

	return nil, fmt.Errorf("could not extract valid JSON from response")
}

func extractFromCodeBlock(text string) string {
	for _, re := range codeBlockPatterns {
		if matches := re.FindStringSubmatch(text); len(matches) > 1 {
			return strings.TrimSpace(matches[1])
		}
	}

	return ""
}

// scans for the first balanced {...} or [...] outside string literals
func extractJSONFromText(text string) string {
	var (
		depth      int
		start      int
		inString   bool
		escape     bool
		foundStart bool
	)

	for i, ch := range text {
		if escape {
			escape = false
			continue
		}

		switch ch {
		case '\\':
			if inString {
				escape = true
			}
		case '"':
			inString = !inString
		case '{', '[':
			if !inString {
				if depth == 0 {
					start = i
					foundStart = true
				}
				depth++
			}
		case '}', ']':
			if !inString && foundStart {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}

	return ""
}
