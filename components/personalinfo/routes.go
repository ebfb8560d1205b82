package personalinfo

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

var errMissingMux = errors.New("personalinfo: missing mux")

// MountPath returns the path the form is served from under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	return joinRoute(basePath, NewOptions(fns...).RoutePath)
}

func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions mounts the form handler under basePath. Unless an
// endpoint was set explicitly, the rendered form posts back to the mounted
// route.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", errMissingMux
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	route := joinRoute(basePath, opts.RoutePath)
	if opts.Endpoint == "" {
		opts.Endpoint = route
	}
	mux.Handle(route, HandlerWithOptions(opts))
	return route, nil
}

func joinRoute(basePath, routePath string) string {
	return path.Join("/", strings.TrimSpace(basePath), strings.TrimSpace(routePath))
}
