package richtext

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// AllowedTags lists the elements rich text content may contain.
var AllowedTags = []string{"ul", "ol", "li", "strong", "b", "br", "div", "p"}

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

// Sanitize strips everything outside the supported subset from content:
// unknown elements are unwrapped (their text is kept), script and style
// bodies are dropped, and every attribute is removed. Text is re-escaped, so
// the result is meant for rendering, not for storing.
func Sanitize(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	return contentSanitizer().Sanitize(content)
}

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(AllowedTags...)
		contentPolicy = policy
	})
	return contentPolicy
}
