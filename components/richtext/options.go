package richtext

import (
	"log/slog"
	"net/http"

	"github.com/goliatone/go-resumegen/pkg/richtext"
)

const (
	defaultRoutePath    = "/api/richtext"
	defaultMaxBodyBytes = 1 << 20
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath    string
	ContentParam string
	PhaseParam   string
	MaxBodyBytes int64
	// DefaultPhase applies when a request does not name a phase.
	DefaultPhase richtext.Phase
	// Sanitize runs content through richtext.Sanitize before rendering.
	Sanitize bool
	Guard    GuardFunc
	Logger   *slog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    defaultRoutePath,
		ContentParam: "content",
		PhaseParam:   "phase",
		MaxBodyBytes: defaultMaxBodyBytes,
		DefaultPhase: richtext.PhaseMounted,
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
	if opts.ContentParam == "" {
		opts.ContentParam = "content"
	}
	if opts.PhaseParam == "" {
		opts.PhaseParam = "phase"
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
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

func WithContentParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ContentParam = name
	}
}

func WithPhaseParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PhaseParam = name
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

func WithDefaultPhase(phase richtext.Phase) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultPhase = phase
	}
}

func WithSanitize(enabled bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sanitize = enabled
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

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
