package richtext

import "sync/atomic"

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle applies display attributes to the wrapper element.
func WithStyle(style Style) Option {
	return func(r *Renderer) {
		r.style = style.Clone()
	}
}

// WithPhase starts the renderer in the given phase. Passing PhaseMounted is
// equivalent to calling Mount right after construction.
func WithPhase(phase Phase) Option {
	return func(r *Renderer) {
		if phase == PhaseMounted {
			r.mounted.Store(true)
		}
	}
}

// Renderer is one rich text component instance. It renders the plain-text
// fallback until Mount is called and the parsed node tree afterwards. The
// mount transition happens once and never reverts.
type Renderer struct {
	content string
	style   Style
	mounted atomic.Bool
}

// New constructs an unmounted renderer for content.
func New(content string, options ...Option) *Renderer {
	r := &Renderer{content: content}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Content returns the markup the renderer was built with.
func (r *Renderer) Content() string {
	return r.content
}

// Phase reports the current mount state.
func (r *Renderer) Phase() Phase {
	if r.mounted.Load() {
		return PhaseMounted
	}
	return PhaseUnmounted
}

// Mount transitions the renderer to PhaseMounted. It returns true only for
// the call that performed the transition.
func (r *Renderer) Mount() bool {
	return r.mounted.CompareAndSwap(false, true)
}

// Render produces the output for the current phase. Node trees are
// recomputed on every call.
func (r *Renderer) Render() Output {
	out := Output{Style: r.style.Clone()}
	if r.mounted.Load() {
		out.Phase = PhaseMounted
		out.Nodes = Parse(r.content)
		return out
	}
	out.Phase = PhaseUnmounted
	out.Fallback = PlainText(r.content)
	return out
}

// Render is a one-shot helper that renders content in the given phase.
func Render(content string, phase Phase, style Style) Output {
	return New(content, WithPhase(phase), WithStyle(style)).Render()
}
