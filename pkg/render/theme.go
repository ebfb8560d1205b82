package render

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeConfig is the renderer-facing view of a go-theme selection.
type ThemeConfig struct {
	Theme   string
	Variant string
	Tokens  map[string]string
	CSSVars map[string]string
}

// CSS renders the CSS variables as a `:root` declaration block, sorted by
// variable name.
func (c *ThemeConfig) CSS() string {
	if c == nil || len(c.CSSVars) == 0 {
		return ""
	}
	names := make([]string, 0, len(c.CSSVars))
	for name := range c.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {")
	for _, name := range names {
		value := c.CSSVars[name]
		if strings.ContainsAny(name+value, ";{}<>") {
			continue
		}
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}

// ThemeConfigFromSelection merges manifest tokens with the selected variant's
// overrides and derives `--token` CSS variables.
func ThemeConfigFromSelection(selection *theme.Selection) *ThemeConfig {
	if selection == nil {
		return nil
	}
	cfg := &ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  make(map[string]string),
		CSSVars: make(map[string]string),
	}
	if manifest := selection.Manifest; manifest != nil {
		for key, value := range manifest.Tokens {
			cfg.Tokens[key] = value
		}
		if variant, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Tokens {
				cfg.Tokens[key] = value
			}
		}
	}
	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
	}
	return cfg
}

// ResolveTheme asks selector for a theme and converts the result.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*ThemeConfig, error) {
	if selector == nil {
		return nil, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q/%q: %w", name, variant, err)
	}
	return ThemeConfigFromSelection(selection), nil
}

// StaticSelector serves selections from a fixed set of manifests.
type StaticSelector struct {
	Manifests      map[string]*theme.Manifest
	DefaultTheme   string
	DefaultVariant string
}

// Ensure StaticSelector satisfies theme.ThemeSelector.
var _ theme.ThemeSelector = (*StaticSelector)(nil)

// NewStaticSelector registers manifests by name; the first becomes the default.
func NewStaticSelector(defaultVariant string, manifests ...*theme.Manifest) *StaticSelector {
	s := &StaticSelector{
		Manifests:      make(map[string]*theme.Manifest, len(manifests)),
		DefaultVariant: defaultVariant,
	}
	for _, manifest := range manifests {
		if manifest == nil || manifest.Name == "" {
			continue
		}
		if s.DefaultTheme == "" {
			s.DefaultTheme = manifest.Name
		}
		s.Manifests[manifest.Name] = manifest
	}
	return s
}

// Select implements theme.ThemeSelector.
func (s *StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if strings.TrimSpace(name) == "" {
		name = s.DefaultTheme
	}
	manifest, ok := s.Manifests[name]
	if !ok {
		return nil, fmt.Errorf("render: theme %q not registered", name)
	}
	if strings.TrimSpace(variant) == "" {
		variant = s.DefaultVariant
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("render: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// DefaultThemeManifest is the built-in resume theme with light and dark
// variants.
func DefaultThemeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "resume",
		Version: "1.0.0",
		Tokens: map[string]string{
			"font-family":   "Georgia, 'Times New Roman', serif",
			"color-text":    "#1f2328",
			"color-muted":   "#59636e",
			"color-accent":  "#0b5cad",
			"color-surface": "#ffffff",
			"spacing":       "1rem",
		},
		Variants: map[string]theme.Variant{
			"light": {},
			"dark": {
				Tokens: map[string]string{
					"color-text":    "#e6edf3",
					"color-muted":   "#9198a1",
					"color-accent":  "#4493f8",
					"color-surface": "#0d1117",
				},
			},
		},
	}
}
