// Package langdetect guesses the language of code snippets using
// go-enry, so the fenced-language rule can suggest an info string for
// unlabeled code blocks.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// candidates are the languages worth suggesting in a context file.
//
//nolint:gochecknoglobals // static candidate list
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Detect returns a lowercase language identifier for the snippet, or
// ("", false) when no confident guess exists. Callers should not label
// a block on a low-confidence guess.
func Detect(content []byte) (string, bool) {
	if len(strings.TrimSpace(string(content))) == 0 {
		return "", false
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe && lang != "" {
		return normalize(lang), true
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang), true
	}

	return "", false
}

// normalize maps enry's display names to common fence info strings.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(lang)
	}
}
