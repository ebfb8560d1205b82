package gotemplate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-resumegen/pkg/render/template"
)

const defaultExtension = ".tmpl"

var errNilEngine = errors.New("gotemplate: engine is nil")

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	dir       string
	files     fs.FS
	ext       string
	globals   map[string]any
	preHooks  []gotemplatepkg.PreHook
	postHooks []gotemplatepkg.PostHook
}

// WithBaseDir adds a directory loader. Files found there shadow the ones in
// the WithFS bundle.
func WithBaseDir(dir string) Option {
	return func(cfg *config) { cfg.dir = strings.TrimSpace(dir) }
}

// WithFS adds an fs.FS loader, usually the embedded template bundle.
func WithFS(files fs.FS) Option {
	return func(cfg *config) { cfg.files = files }
}

// WithExtension sets the suffix appended to template names that lack it.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		cfg.ext = "." + strings.TrimPrefix(ext, ".")
	}
}

// WithGlobalData seeds values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if cfg.globals == nil {
			cfg.globals = map[string]any{}
		}
		for key, value := range data {
			cfg.globals[key] = value
		}
	}
}

// WithPreHooks runs go-template pre hooks before each render, in order. A
// hook may replace HookContext.Data.
func WithPreHooks(hooks ...gotemplatepkg.PreHook) Option {
	return func(cfg *config) { cfg.preHooks = append(cfg.preHooks, hooks...) }
}

// WithPostHooks runs go-template post hooks over each rendered output, in
// order. Each hook sees the previous hook's result in HookContext.Output.
func WithPostHooks(hooks ...gotemplatepkg.PostHook) Option {
	return func(cfg *config) { cfg.postHooks = append(cfg.postHooks, hooks...) }
}

// Engine renders pongo2 templates and caches each compiled file.
type Engine struct {
	set   *pongo2.TemplateSet
	ext   string
	hooks *gotemplatepkg.HookChain

	mu    sync.RWMutex
	cache map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. WithBaseDir or WithFS must be supplied.
func New(options ...Option) (*Engine, error) {
	cfg := config{ext: defaultExtension}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	loaders := make([]pongo2.TemplateLoader, 0, 2)
	if cfg.dir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(cfg.dir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: directory loader: %w", err)
		}
		loaders = append(loaders, local)
	}
	if cfg.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.files))
	}
	if len(loaders) == 0 {
		return nil, errors.New("gotemplate: a base dir or fs.FS is required")
	}

	registerDefaultFilters()
	e := &Engine{
		set:   pongo2.NewSet("resumegen", loaders...),
		ext:   cfg.ext,
		hooks: gotemplatepkg.NewHookChain(
			gotemplatepkg.WithPreHooksChain(cfg.preHooks...),
			gotemplatepkg.WithPostHooksChain(cfg.postHooks...),
		),
		cache: map[string]*pongo2.Template{},
	}
	if len(cfg.globals) > 0 {
		if err := e.GlobalContext(cfg.globals); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Render runs name as inline source when it holds template tags, otherwise
// as a template path.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(name, "{{") || strings.Contains(name, "{%") {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errNilEngine
	}
	if !strings.HasSuffix(name, e.ext) {
		name += e.ext
	}
	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	hc := &gotemplatepkg.HookContext{TemplateName: name, Data: data}
	return e.run(tmpl, fmt.Sprintf("template %q", name), hc, out)
}

func (e *Engine) RenderString(source string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errNilEngine
	}
	tmpl, err := e.set.FromString(source)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse inline template: %w", err)
	}
	hc := &gotemplatepkg.HookContext{Template: source, Data: data}
	return e.run(tmpl, "inline template", hc, out)
}

// RegisterFilter exposes fn to templates as a pongo2 filter. Filters are
// process wide, so a name can only be taken once.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already registered", name)
	}
	return pongo2.RegisterFilter(name, func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

// GlobalContext merges data into the values every template can read.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errNilEngine
	}
	if data == nil {
		return nil
	}
	values, err := toContext(data)
	if err != nil {
		return fmt.Errorf("gotemplate: global data: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = pongo2.Context{}
	}
	e.set.Globals.Update(values)
	return nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.cache[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.cache[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", name, err)
	}
	e.cache[name] = tmpl
	return tmpl, nil
}

func (e *Engine) run(tmpl *pongo2.Template, label string, hc *gotemplatepkg.HookContext, out []io.Writer) (string, error) {
	hc.Metadata = map[string]any{}
	hc.IsPreHook = true
	if err := e.hooks.ExecutePreHooks(hc); err != nil {
		return "", fmt.Errorf("gotemplate: pre hook for %s: %w", label, err)
	}

	values, err := toContext(hc.Data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %s data: %w", label, err)
	}

	var sb strings.Builder
	e.mu.RLock()
	err = tmpl.ExecuteWriter(values, &sb)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %s: %w", label, err)
	}

	hc.IsPreHook = false
	hc.Output = sb.String()
	rendered, err := e.hooks.ExecutePostHooks(hc)
	if err != nil {
		return "", fmt.Errorf("gotemplate: post hook for %s: %w", label, err)
	}
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return rendered, err
		}
	}
	return rendered, nil
}

// toContext encodes data to JSON and back so templates see plain maps keyed
// by json field names.
func toContext(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	values := map[string]any{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("data must encode to a JSON object: %w", err)
	}
	return pongo2.Context(values), nil
}
