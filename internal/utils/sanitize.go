package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

const maxSanitizePasses = 4

// SanitizeText strips every HTML element from user supplied text and trims it.
// The result is plain text, so entities are decoded; decoding repeats until
// no markup appears, which keeps entity encoded tags from surviving.
func SanitizeText(s string) string {
	current := s

	for range maxSanitizePasses {
		cleaned := strictPolicy.Sanitize(current)

		decoded := html.UnescapeString(cleaned)
		if decoded == current {
			return strings.TrimSpace(decoded)
		}

		current = decoded
	}

	return strings.TrimSpace(strictPolicy.Sanitize(current))
}
