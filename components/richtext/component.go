package richtext

import "net/http"

// Component bundles the rich text rendering endpoint with its options.
type Component struct {
	opts Options
}

func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

func (c *Component) options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return c.opts
}

// Options returns a copy of the configuration.
func (c *Component) Options() Options {
	opts := c.options()
	return NewOptions(func(o *Options) { *o = opts })
}

func (c *Component) Handler() http.Handler {
	return HandlerWithOptions(c.options())
}

// RegisterRoutes mounts the rendering handler under basePath and returns the
// registered pattern.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, c.options())
}
