package richtext

import (
	"sort"
	"strings"
)

// Style holds optional display attributes applied to the wrapper element,
// keyed by CSS property name.
type Style map[string]string

// String renders the style as an inline CSS declaration list with properties
// sorted by name. Entries that could break out of the attribute are skipped.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		property := strings.ToLower(strings.TrimSpace(key))
		value := strings.TrimSpace(s[key])
		if property == "" || value == "" {
			continue
		}
		if unsafeStyleToken(property) || unsafeStyleToken(value) {
			continue
		}
		parts = append(parts, property+": "+value)
	}
	return strings.Join(parts, "; ")
}

// Clone returns an independent copy of the style.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for key, value := range s {
		out[key] = value
	}
	return out
}

func unsafeStyleToken(token string) bool {
	return strings.ContainsAny(token, `;"'<>{}\`)
}

// ParseStyle reads an inline declaration list such as "color: red;
// font-size: 12px". Declarations without a colon are ignored.
func ParseStyle(raw string) Style {
	var out Style
	for _, decl := range strings.Split(raw, ";") {
		property, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		property = strings.ToLower(strings.TrimSpace(property))
		value = strings.TrimSpace(value)
		if property == "" || value == "" {
			continue
		}
		if out == nil {
			out = make(Style)
		}
		out[property] = value
	}
	return out
}
