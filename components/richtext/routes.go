package richtext

import (
	"errors"
	"net/http"
	"path"
	"strings"
)

// Mux is satisfied by *http.ServeMux and chi.Router.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the rendering endpoint under basePath. Pages hand it to
// the browser runtime as data-richtext-endpoint.
func MountPath(basePath string, fns ...OptionFn) string {
	route := NewOptions(fns...).RoutePath
	return path.Join("/", strings.TrimSpace(basePath), strings.TrimSpace(route))
}

func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", errors.New("richtext: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	endpoint := MountPath(basePath, func(o *Options) { o.RoutePath = opts.RoutePath })
	mux.Handle(endpoint, HandlerWithOptions(opts))
	return endpoint, nil
}
