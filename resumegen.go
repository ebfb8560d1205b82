// Package resumegen is the convenience entry point of the resume builder: a
// shared resume store, the personal info form and preview renderers with
// rich text that renders a plain-text fallback before mount and a parsed node
// tree after.
package resumegen

import (
	"context"
	"fmt"

	"github.com/goliatone/go-resumegen/pkg/model"
	"github.com/goliatone/go-resumegen/pkg/openapi"
	"github.com/goliatone/go-resumegen/pkg/render"
	htmlrenderer "github.com/goliatone/go-resumegen/pkg/renderers/html"
	jsonrenderer "github.com/goliatone/go-resumegen/pkg/renderers/json"
	"github.com/goliatone/go-resumegen/pkg/resume"
)

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// NewStore returns a memory store seeded with initial. Values are stored as
// written; rich text is made safe when it is rendered.
func NewStore(initial resume.Resume, options ...resume.StoreOption) *resume.MemoryStore {
	base := []resume.StoreOption{resume.WithInitial(initial)}
	return resume.NewMemoryStore(append(base, options...)...)
}

// NewRegistry returns a registry with the HTML renderer (the default) and the
// JSON renderer.
func NewRegistry(options ...htmlrenderer.Option) (*render.Registry, error) {
	html, err := htmlrenderer.New(options...)
	if err != nil {
		return nil, fmt.Errorf("resumegen: html renderer: %w", err)
	}
	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(jsonrenderer.New()); err != nil {
		return nil, err
	}
	return registry, nil
}

// PersonalInfoForm builds the personal info form and fills it with the
// current store values.
func PersonalInfoForm(ctx context.Context, store resume.Store) (model.FormModel, error) {
	form, err := openapi.BuildPersonalInfoForm(ctx)
	if err != nil {
		return model.FormModel{}, err
	}
	if store == nil {
		return form, nil
	}
	snapshot, err := store.Snapshot(ctx)
	if err != nil {
		return model.FormModel{}, err
	}
	return model.Apply(form, model.WithValues(snapshot.Personal.Values()))
}

// RenderPreview renders the current store contents with the named renderer.
// An empty name selects the registry default.
func RenderPreview(ctx context.Context, registry *render.Registry, store resume.Store, name string, options RenderOptions) ([]byte, string, error) {
	if registry == nil || store == nil {
		return nil, "", fmt.Errorf("resumegen: registry and store are required")
	}
	renderer, err := registry.Resolve(name)
	if err != nil {
		return nil, "", err
	}
	snapshot, err := store.Snapshot(ctx)
	if err != nil {
		return nil, "", err
	}
	out, err := renderer.Render(ctx, snapshot, options)
	if err != nil {
		return nil, "", err
	}
	return out, renderer.ContentType(), nil
}
