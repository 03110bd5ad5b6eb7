package advisor

import (
	"encoding/json"
	"strings"
)

// parseRecommendationResponse extracts the first brace-delimited span from
// the model's free-text reply and decodes it. Field presence, value ranges
// and percentage sums are deliberately not validated here; the service
// trusts the prompt's requested shape and relies on the mock fallback for
// outright failures.
func parseRecommendationResponse(content string) (*Recommendation, error) {
	span, ok := extractJSONObject(content)
	if !ok {
		return nil, NewError(ErrCodeParse, "no JSON object found in ai response")
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(span), &rec); err != nil {
		return nil, WrapError(ErrCodeDecode, "model returned invalid JSON", err)
	}
	return &rec, nil
}

// extractJSONObject strips a leading Markdown code fence if present, then
// takes the first `{` through the last `}`. Best-effort heuristic: nested
// unrelated braces or multiple JSON-looking spans widen the match.
func extractJSONObject(content string) (string, bool) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "```") {
		lines := strings.Split(trimmed, "\n")
		if len(lines) >= 2 {
			lines = lines[1:]
			if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
				lines = lines[:len(lines)-1]
			}
			trimmed = strings.Join(lines, "\n")
		}
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return trimmed[start : end+1], true
}
