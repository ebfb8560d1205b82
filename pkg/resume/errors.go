package resume

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a field name is not part of the resume.
var ErrUnknownField = errors.New("resume: unknown field")

func unknownField(name FieldName) error {
	return fmt.Errorf("%w %q", ErrUnknownField, string(name))
}

// ParseFieldName normalises raw into a known field name.
func ParseFieldName(raw string) (FieldName, error) {
	name := FieldName(strings.ToLower(strings.TrimSpace(raw)))
	if !name.Valid() {
		return "", unknownField(name)
	}
	return name, nil
}
