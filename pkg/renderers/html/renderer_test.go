package html_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-resumegen/pkg/model"
	"github.com/goliatone/go-resumegen/pkg/openapi"
	"github.com/goliatone/go-resumegen/pkg/render"
	htmlrenderer "github.com/goliatone/go-resumegen/pkg/renderers/html"
	"github.com/goliatone/go-resumegen/pkg/richtext"
	"github.com/goliatone/go-resumegen/pkg/testsupport"
)

func newRenderer(t *testing.T, options ...htmlrenderer.Option) *htmlrenderer.Renderer {
	t.Helper()
	r, err := htmlrenderer.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func TestRenderPreviewUnmountedUsesFallback(t *testing.T) {
	r := newRenderer(t)

	out, err := r.Render(testsupport.Context(), testsupport.SampleResume(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`data-phase="unmounted"`,
		`<h1 class="resume-preview__name">Ada Lovelace</h1>`,
		`<a href="mailto:ada@example.com">ada@example.com</a>`,
		`<a href="https://example.com/ada" rel="noopener noreferrer">`,
		`<div>Analyst of the Analytical EngineNotes   programs</div>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected preview to contain %q\n%s", want, html)
		}
	}
	if strings.Contains(html, "<strong>") {
		t.Errorf("unmounted preview must not contain markup from the summary")
	}
}

func TestRenderPreviewMountedUsesNodeTree(t *testing.T) {
	r := newRenderer(t)

	opts := render.RenderOptions{
		Phase:        richtext.PhaseMounted,
		SummaryStyle: richtext.Style{"color": "#333"},
	}
	out, err := r.Render(testsupport.Context(), testsupport.SampleResume(), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	want := `<div style="color: #333"><p>Analyst of the <strong>Analytical Engine</strong></p><ul><li>Notes &amp; programs</li></ul></div>`
	if !strings.Contains(html, want) {
		t.Fatalf("expected mounted summary %q in\n%s", want, html)
	}
	if !strings.Contains(html, `data-richtext-style="color: #333"`) {
		t.Fatalf("expected style data attribute in\n%s", html)
	}
}

func TestRenderPreviewEscapesSourceAndDropsUnsafeLinks(t *testing.T) {
	r := newRenderer(t)

	doc := testsupport.SampleResume()
	doc.Personal.Name = `<script>alert(1)</script>`
	doc.Personal.Link = "javascript:alert(1)"

	out, err := r.Render(testsupport.Context(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected name to be escaped:\n%s", html)
	}
	if strings.Contains(html, `href="javascript:`) {
		t.Fatalf("expected unsafe link to be rendered as text:\n%s", html)
	}
	if !strings.Contains(html, `data-richtext-source="&lt;p&gt;Analyst`) {
		t.Fatalf("expected escaped rich text source attribute:\n%s", html)
	}
}

func TestRenderPreviewThemeCSS(t *testing.T) {
	r := newRenderer(t)

	cfg, err := render.ResolveTheme(render.NewStaticSelector("light", render.DefaultThemeManifest()), "resume", "dark")
	if err != nil {
		t.Fatalf("resolve theme: %v", err)
	}
	out, err := r.Render(testsupport.Context(), testsupport.SampleResume(), render.RenderOptions{Theme: cfg})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `data-theme="resume" data-variant="dark"`) {
		t.Fatalf("expected theme attributes:\n%s", html)
	}
	if !strings.Contains(html, "--color-surface: #0d1117;") {
		t.Fatalf("expected dark surface token:\n%s", html)
	}
}

func TestRenderFormPostsOneFieldPerForm(t *testing.T) {
	r := newRenderer(t)

	form, err := openapi.BuildPersonalInfoForm(testsupport.Context())
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	form, err = model.Apply(form, model.WithValues(testsupport.SampleResume().Personal.Values()))
	if err != nil {
		t.Fatalf("apply values: %v", err)
	}

	out, err := r.RenderForm(testsupport.Context(), form)
	if err != nil {
		t.Fatalf("render form: %v", err)
	}
	html := string(out)

	if got := strings.Count(html, `<form class="resume-form__field" method="post" action="/personal-info"`); got != 6 {
		t.Fatalf("expected six field forms, got %d\n%s", got, html)
	}
	for _, want := range []string{
		`<input type="hidden" name="field" value="email">`,
		`<label for="personal-info-email">Email</label>`,
		`<input id="personal-info-email" type="email" name="value" value="ada@example.com" placeholder="ada@example.com">`,
		`<input id="personal-info-phone" type="tel"`,
		`<textarea id="personal-info-summary" name="value" rows="6" data-richtext-input>&lt;p&gt;Analyst`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected form to contain %q\n%s", want, html)
		}
	}
}

func TestRenderPage(t *testing.T) {
	r := newRenderer(t)

	form, err := openapi.BuildPersonalInfoForm(testsupport.Context())
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	out, err := r.RenderPage(testsupport.Context(), htmlrenderer.Page{
		Form:             form,
		Resume:           testsupport.SampleResume(),
		Stylesheets:      []string{"/assets/resumegen.css"},
		Scripts:          []string{"/assets/resumegen-richtext.js"},
		RichTextEndpoint: "/api/richtext",
	})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Resume</title>",
		`<link rel="stylesheet" href="/assets/resumegen.css">`,
		`<script src="/assets/resumegen-richtext.js" defer></script>`,
		`data-richtext-endpoint="/api/richtext"`,
		`data-form-endpoint="/personal-info"`,
		`class="resume-preview"`,
		`class="resume-form"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestRendererHonoursTemplateOverrides(t *testing.T) {
	files := fstest.MapFS{
		"templates/preview.tmpl": &fstest.MapFile{Data: []byte(`custom:{{ personal.name }}:{{ phase }}`)},
	}
	r := newRenderer(t, htmlrenderer.WithTemplatesFS(files))

	out, err := r.Render(testsupport.Context(), testsupport.SampleResume(), render.RenderOptions{Phase: richtext.PhaseMounted})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "custom:Ada Lovelace:mounted" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderCancelledContext(t *testing.T) {
	r := newRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Render(ctx, testsupport.SampleResume(), render.RenderOptions{}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestRenderSeedFixture(t *testing.T) {
	r := newRenderer(t)
	doc := testsupport.MustLoadResume(t, "../../resume/testdata/seed.yaml")

	out, err := r.Render(testsupport.Context(), doc, render.RenderOptions{Phase: richtext.PhaseMounted})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<ul><li>Notes</li><li>Algorithms</li></ul>`
	if !strings.Contains(string(out), want) {
		t.Fatalf("expected %q in\n%s", want, out)
	}
}

func TestRendererPostRenderHooks(t *testing.T) {
	var names []string
	r := newRenderer(t, htmlrenderer.WithPostRenderHooks(func(hc *gotemplatepkg.HookContext) (string, error) {
		names = append(names, hc.TemplateName)
		return hc.Output + "<!-- resumegen -->", nil
	}))

	out, err := r.Render(testsupport.Context(), testsupport.SampleResume(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasSuffix(string(out), "</section><!-- resumegen -->") {
		t.Fatalf("expected trimmed fragment followed by hook output, got %q", out)
	}
	if len(names) != 1 || names[0] != htmlrenderer.PreviewTemplate {
		t.Fatalf("unexpected hook calls %v", names)
	}
}
