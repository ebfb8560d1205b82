package richtext

import (
	"fmt"
	"strings"
)

// Phase is the mount state of a Renderer.
type Phase uint8

const (
	// PhaseUnmounted renders the plain-text fallback.
	PhaseUnmounted Phase = iota
	// PhaseMounted renders the parsed node tree.
	PhaseMounted
)

func (p Phase) String() string {
	switch p {
	case PhaseUnmounted:
		return "unmounted"
	case PhaseMounted:
		return "mounted"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// MarshalText encodes the phase name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText. An empty value
// decodes to PhaseUnmounted.
func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePhase resolves a phase name, case-insensitively.
func ParsePhase(raw string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "unmounted", "fallback", "static":
		return PhaseUnmounted, nil
	case "mounted", "interactive":
		return PhaseMounted, nil
	default:
		return PhaseUnmounted, fmt.Errorf("richtext: unknown phase %q", raw)
	}
}
