package render

import (
	"context"

	"github.com/goliatone/go-resumegen/pkg/resume"
)

// Renderer converts a resume into a byte representation (HTML, JSON, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc resume.Resume, options RenderOptions) ([]byte, error)
}
