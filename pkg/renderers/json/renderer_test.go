package json_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-resumegen/pkg/render"
	jsonrenderer "github.com/goliatone/go-resumegen/pkg/renderers/json"
	"github.com/goliatone/go-resumegen/pkg/richtext"
	"github.com/goliatone/go-resumegen/pkg/testsupport"
)

func TestRenderMountedGolden(t *testing.T) {
	r := jsonrenderer.New()

	out, err := r.Render(testsupport.Context(), testsupport.SampleResume(), render.RenderOptions{Phase: richtext.PhaseMounted})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.CompareJSONGolden(t, filepath.Join("testdata", "preview_mounted.golden.json"), out)
}

func TestRenderUnmountedCarriesFallback(t *testing.T) {
	r := jsonrenderer.New(jsonrenderer.WithIndent(""))

	out, err := r.Render(testsupport.Context(), testsupport.SampleResume(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(string(out), "\n") != 1 {
		t.Fatalf("expected compact output, got %s", out)
	}

	var decoded jsonrenderer.Preview
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Summary.Phase != richtext.PhaseUnmounted {
		t.Fatalf("expected unmounted phase, got %s", decoded.Summary.Phase)
	}
	if decoded.Summary.Fallback != "Analyst of the Analytical EngineNotes   programs" {
		t.Fatalf("unexpected fallback %q", decoded.Summary.Fallback)
	}
	if len(decoded.Summary.Nodes) != 0 {
		t.Fatalf("expected no nodes before mount, got %d", len(decoded.Summary.Nodes))
	}
	if decoded.Theme != nil {
		t.Fatalf("expected no theme, got %#v", decoded.Theme)
	}
}

func TestRenderIncludesTheme(t *testing.T) {
	cfg := &render.ThemeConfig{Theme: "resume", Variant: "dark", Tokens: map[string]string{"spacing": "1rem"}}

	out, err := jsonrenderer.New().Render(testsupport.Context(), testsupport.SampleResume(), render.RenderOptions{Theme: cfg})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var decoded jsonrenderer.Preview
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Theme == nil || decoded.Theme.Variant != "dark" || decoded.Theme.Tokens["spacing"] != "1rem" {
		t.Fatalf("unexpected theme %#v", decoded.Theme)
	}
}

func TestRenderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := jsonrenderer.New().Render(ctx, testsupport.SampleResume(), render.RenderOptions{}); err == nil {
		t.Fatal("expected context error")
	}
}
