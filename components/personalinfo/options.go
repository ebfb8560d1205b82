package personalinfo

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/goliatone/go-resumegen/pkg/model"
	"github.com/goliatone/go-resumegen/pkg/resume"
)

const (
	defaultRoutePath    = "/personal-info"
	defaultMaxBodyBytes = 1 << 20
)

// GuardFunc rejects a request by returning an error. Errors implementing
// HTTPError choose the status code; anything else maps to 403.
type GuardFunc func(r *http.Request) error

// FormRenderer renders a form model as HTML.
type FormRenderer interface {
	RenderForm(ctx context.Context, form model.FormModel) ([]byte, error)
}

type Options struct {
	RoutePath string
	// RedirectPath is where form posts are sent after an update. Empty means
	// the request path.
	RedirectPath string
	// Endpoint overrides the form action. RegisterRoutes fills it with the
	// mounted route.
	Endpoint     string
	MaxBodyBytes int64
	Guard        GuardFunc

	// Store backs the form. When nil the store bound to the request context
	// with resume.WithStore is used.
	Store resume.Store
	// Form overrides the form model built from the embedded OpenAPI document.
	Form     *model.FormModel
	Renderer FormRenderer
	Logger   *slog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    defaultRoutePath,
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opts.Form != nil {
		form := opts.Form.Clone()
		opts.Form = &form
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithEndpoint(endpoint string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Endpoint = endpoint
	}
}

func WithRedirectPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RedirectPath = path
	}
}

func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithStore(store resume.Store) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Store = store
	}
}

func WithForm(form model.FormModel) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Form = &form
	}
}

func WithRenderer(renderer FormRenderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
