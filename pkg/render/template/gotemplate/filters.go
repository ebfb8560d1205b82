package gotemplate

import (
	"strings"
	"unicode"

	"github.com/flosch/pongo2/v6"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("fieldid") {
		_ = pongo2.RegisterFilter("fieldid", filterFieldID)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterFieldID turns a field name into an element id: `{{ "Full Name"|fieldid:"resume" }}`
// yields "resume-full-name".
func filterFieldID(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var b strings.Builder
	dash := false
	for _, r := range strings.TrimSpace(in.String()) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	id := strings.TrimSuffix(b.String(), "-")
	if param != nil && !param.IsNil() {
		if prefix := strings.TrimSpace(param.String()); prefix != "" {
			if id == "" {
				id = prefix
			} else {
				id = prefix + "-" + id
			}
		}
	}
	return pongo2.AsValue(id), nil
}
