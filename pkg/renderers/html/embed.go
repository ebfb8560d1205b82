package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Template names inside TemplatesFS.
const (
	PreviewTemplate = "templates/preview.tmpl"
	FormTemplate    = "templates/form.tmpl"
	PageTemplate    = "templates/page.tmpl"
)

// TemplatesFS exposes the embedded template bundle so callers can extend or
// override individual templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
