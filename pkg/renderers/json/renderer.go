// Package json renders the resume preview as JSON: the personal info values
// plus the summary as a rich text output in the requested phase.
package json

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/richtext"
)

// Name is the registry name of the JSON preview renderer.
const Name = "json"

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent sets the indentation used for output. An empty string produces
// compact JSON.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer encodes previews as JSON.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer. Output is indented with two spaces by default.
func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Preview is the JSON document shape.
type Preview struct {
	Personal resume.PersonalInfo `json:"personal"`
	Summary  richtext.Output     `json:"summary"`
	Theme    *Theme              `json:"theme,omitempty"`
}

// Theme carries the resolved theme tokens.
type Theme struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant,omitempty"`
	Tokens  map[string]string `json:"tokens,omitempty"`
}

// Render encodes doc with its summary rendered in options.Phase.
func (r *Renderer) Render(ctx context.Context, doc resume.Resume, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	preview := Preview{
		Personal: doc.Personal,
		Summary:  richtext.Render(doc.Personal.Summary, options.Phase, options.SummaryStyle),
	}
	if cfg := options.Theme; cfg != nil {
		preview.Theme = &Theme{Name: cfg.Theme, Variant: cfg.Variant, Tokens: cfg.Tokens}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(preview); err != nil {
		return nil, fmt.Errorf("json renderer: encode: %w", err)
	}
	return buf.Bytes(), nil
}
