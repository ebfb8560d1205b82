package render

import "github.com/goliatone/go-resumegen/pkg/richtext"

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the resume itself.
type RenderOptions struct {
	// Phase selects how rich text fields are rendered. PhaseUnmounted emits the
	// plain-text fallback used for the first, non-interactive page load;
	// PhaseMounted emits the parsed node tree.
	Phase richtext.Phase
	// SummaryStyle is applied to the wrapper element of the summary.
	SummaryStyle richtext.Style
	// Theme carries resolved design tokens. Nil means renderer defaults.
	Theme *ThemeConfig
}
