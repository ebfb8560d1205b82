// Package html renders the resume preview, the personal info form and the
// full editor page as HTML using pongo2 templates.
//
// Rich text fields are rendered through a richtext.Renderer in the phase
// requested by render.RenderOptions. The preview marks the summary with
// data-richtext attributes so the browser runtime can swap the pre-mount
// fallback for the mounted tree once the page has loaded.
package html
