package html

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-resumegen/pkg/model"
	"github.com/goliatone/go-resumegen/pkg/render"
	rendertemplate "github.com/goliatone/go-resumegen/pkg/render/template"
	gotemplate "github.com/goliatone/go-resumegen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/richtext"
)

// Name is the registry name of the HTML preview renderer.
const Name = "html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	postHooks        []gotemplatepkg.PostHook
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPostRenderHooks adds go-template post hooks that run over every
// rendered template after the built-in fragment trimming. They are ignored
// when WithTemplateRenderer supplies the engine.
func WithPostRenderHooks(hooks ...gotemplatepkg.PostHook) Option {
	return func(cfg *config) {
		cfg.postHooks = append(cfg.postHooks, hooks...)
	}
}

// Renderer renders previews, forms and pages.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithPostHooks(append([]gotemplatepkg.PostHook{trimFragment}, cfg.postHooks...)...),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the preview fragment for doc.
func (r *Renderer) Render(ctx context.Context, doc resume.Resume, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := r.execute(PreviewTemplate, previewData(doc, options))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// RenderForm produces the personal info form. Each field posts on its own so
// a submission updates exactly one field.
func (r *Renderer) RenderForm(ctx context.Context, form model.FormModel) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := r.execute(FormTemplate, formData(form))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Page describes the full editor page.
type Page struct {
	Title            string
	Form             model.FormModel
	Resume           resume.Resume
	Options          render.RenderOptions
	Stylesheets      []string
	Scripts          []string
	RichTextEndpoint string
	PreviewEndpoint  string
}

// RenderPage produces a complete HTML document with the form next to the
// preview. The preview is rendered in the phase carried by page.Options.
func (r *Renderer) RenderPage(ctx context.Context, page Page) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	formHTML, err := r.execute(FormTemplate, formData(page.Form))
	if err != nil {
		return nil, err
	}
	previewHTML, err := r.execute(PreviewTemplate, previewData(page.Resume, page.Options))
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(page.Title)
	if title == "" {
		title = "Resume"
	}
	out, err := r.execute(PageTemplate, map[string]any{
		"title":             title,
		"form_html":         formHTML,
		"preview_html":      previewHTML,
		"stylesheets":       page.Stylesheets,
		"scripts":           page.Scripts,
		"richtext_endpoint": page.RichTextEndpoint,
		"preview_endpoint":  page.PreviewEndpoint,
		"form_endpoint":     page.Form.Endpoint,
	})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// trimFragment drops the trailing newline of the preview and form templates
// so they nest inside the page without stray whitespace.
func trimFragment(hc *gotemplatepkg.HookContext) (string, error) {
	if hc.TemplateName == PageTemplate {
		return hc.Output, nil
	}
	return strings.TrimRight(hc.Output, "\n"), nil
}

func (r *Renderer) execute(name string, data map[string]any) (string, error) {
	if r == nil || r.templates == nil {
		return "", fmt.Errorf("html renderer: template renderer is nil")
	}
	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("html renderer: render %s: %w", name, err)
	}
	return out, nil
}

func previewData(doc resume.Resume, options render.RenderOptions) map[string]any {
	personal := doc.Personal
	summary := richtext.Render(personal.Summary, options.Phase, options.SummaryStyle)

	data := map[string]any{
		"personal":       personal,
		"link_href":      safeLink(personal.Link),
		"phase":          options.Phase.String(),
		"summary_html":   string(summary.HTML()),
		"summary_empty":  summary.Empty(),
		"summary_source": personal.Summary,
		"summary_style":  options.SummaryStyle.String(),
	}
	if cfg := options.Theme; cfg != nil {
		data["theme"] = cfg.Theme
		data["variant"] = cfg.Variant
		data["theme_css"] = cfg.CSS()
	}
	return data
}

func formData(form model.FormModel) map[string]any {
	method := strings.ToLower(strings.TrimSpace(form.Method))
	if method == "" {
		method = "post"
	}
	return map[string]any{
		"form":   form,
		"method": method,
	}
}

// safeLink returns link when it is an absolute http(s) URL and "" otherwise.
func safeLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}
