package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// IsPlainText reports whether the strict policy would leave text unchanged.
// The policy escapes what it keeps, so its output is unescaped before the
// comparison.
func IsPlainText(text string) bool {
	return html.UnescapeString(strictPolicy.Sanitize(text)) == text
}
