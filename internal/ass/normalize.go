package ass

import (
	"regexp"
	"strings"
)

var overrideTagRe = regexp.MustCompile(`\{[^}]*\}`)

// NormalizeText strips "{...}" override tag spans and surrounding whitespace.
// An unmatched "{" is kept. The result may be empty.
func NormalizeText(text string) string {
	return strings.TrimSpace(overrideTagRe.ReplaceAllString(text, ""))
}
