package resumegen

import (
	"io/fs"

	htmlrenderer "github.com/goliatone/go-resumegen/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in HTML renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return htmlrenderer.TemplatesFS()
}
