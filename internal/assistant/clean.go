package assistant

import (
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

const maxBreakdownTasks = 8

var (
	jsonWordRe   = regexp.MustCompile(`(?i)\bjson\b`)
	edgeQuotesRe = regexp.MustCompile(`^["'“”‘’\s]+|["'“”‘’\s]+$`)
	listNumberRe = regexp.MustCompile(`^[0-9]+\s*[.)\-:]\s*`)
	listMarkerRe = regexp.MustCompile(`^[-*\x{2022}]\s*`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	zhDelimiters = regexp.MustCompile(`[，。,；;]`)
	enDelimiters = regexp.MustCompile(`[,.;]`)
)

// cleanTitle strips markdown fencing, leading list markers and numbers,
// and surrounding quotes from one generated task title.
func cleanTitle(s string) string {
	s = strings.ReplaceAll(s, "```", "")
	s = jsonWordRe.ReplaceAllString(s, "")
	s = edgeQuotesRe.ReplaceAllString(s, "")
	s = listNumberRe.ReplaceAllString(s, "")
	s = listMarkerRe.ReplaceAllString(s, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func stripQuoteMarks(s string) string {
	return strings.TrimSpace(edgeQuotesRe.ReplaceAllString(s, ""))
}

// extractTasks parses a generated breakdown response: a JSON array, a
// {"tasks": [...]} object, one title per line, or a delimited sentence,
// in that order of preference.
func extractTasks(raw string, lang model.Language) []string {
	text := strings.TrimSpace(raw)

	var asArray []any
	if err := json.Unmarshal([]byte(text), &asArray); err == nil {
		return cleanAll(stringify(asArray))
	}
	var asObject struct {
		Tasks []any `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(text), &asObject); err == nil && len(asObject.Tasks) > 0 {
		return cleanAll(stringify(asObject.Tasks))
	}

	byLine := cleanAll(strings.Split(text, "\n"))
	if len(byLine) >= 3 {
		return byLine
	}

	return cleanAll(delimiters(lang).Split(text, -1))
}

func delimiters(lang model.Language) *regexp.Regexp {
	if lang == model.LanguageZH {
		return zhDelimiters
	}
	return enDelimiters
}

func stringify(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func cleanAll(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		cleaned := cleanTitle(p)
		if len([]rune(cleaned)) > 1 {
			out = append(out, cleaned)
		}
		if len(out) == maxBreakdownTasks {
			break
		}
	}
	return out
}
