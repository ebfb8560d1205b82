package richtext

import (
	"regexp"
	"strings"
)

var (
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
	entityPattern = regexp.MustCompile(`&[^;]+;`)
	strayBrackets = strings.NewReplacer("<", "", ">", "")
)

// PlainText returns the pre-mount fallback for content: tags are removed and
// every entity reference is collapsed to a single space. Entities are not
// decoded. Angle brackets left over from unterminated tags or bare
// comparisons are dropped so the fallback never carries markup characters.
func PlainText(content string) string {
	if content == "" {
		return ""
	}
	text := tagPattern.ReplaceAllString(content, "")
	text = entityPattern.ReplaceAllString(text, " ")
	return strayBrackets.Replace(text)
}
