package flows

import (
	"regexp"
	"strings"
)

const fence = "```"

// strips one markdown fence the model may still wrap around generated code.
// the fence tagged with language wins, then any fence. unfenced text is
// only trimmed.
func StripCodeFence(raw, language string) string {
	code := strings.TrimSpace(raw)

	re, err := regexp.Compile("```(?:" + regexp.QuoteMeta(strings.ToLower(language)) + ")?\\n([\\s\\S]*?)\\n```")
	if err == nil {
		if m := re.FindStringSubmatch(code); len(m) > 1 && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
	}

	if len(code) >= 2*len(fence) && strings.HasPrefix(code, fence) && strings.HasSuffix(code, fence) {
		code = strings.TrimSpace(code[len(fence) : len(code)-len(fence)])

		// first line is the info string
		if i := strings.IndexByte(code, '\n'); i != -1 {
			code = strings.TrimSpace(code[i+1:])
		}
	}

	return code
}
