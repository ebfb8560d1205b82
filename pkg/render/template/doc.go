// Package template defines the renderer-agnostic template seam used by the
// HTML renderers. Implementations live in sub-packages; gotemplate provides
// the pongo2-backed engine used by default.
package template
