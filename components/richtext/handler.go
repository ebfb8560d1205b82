package richtext

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goliatone/go-resumegen/pkg/richtext"
)

// HTTPError lets guards pick the response status.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError pairs an error with the status it should be answered with.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err == nil {
		return http.StatusText(e.StatusCode())
	}
	return e.Err.Error()
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code > 0 {
		return e.Code
	}
	return http.StatusInternalServerError
}

// Request is the JSON body accepted by POST.
type Request struct {
	Content string         `json:"content"`
	Style   richtext.Style `json:"style,omitempty"`
	Phase   string         `json:"phase,omitempty"`
}

// Response is the JSON body returned for every successful render.
type Response struct {
	Phase    richtext.Phase `json:"phase"`
	Fallback string         `json:"fallback"`
	Nodes    richtext.Nodes `json:"nodes"`
	HTML     string         `json:"html"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options
// value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead && r.Method != http.MethodPost {
			w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodHead, http.MethodPost}, ", "))
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		req, err := decodeRequest(w, r, opts)
		if err != nil {
			writeError(w, err)
			return
		}
		phase := opts.DefaultPhase
		if req.Phase != "" {
			phase, err = richtext.ParsePhase(req.Phase)
			if err != nil {
				writeError(w, StatusError{Code: http.StatusBadRequest, Err: err})
				return
			}
		}

		// Sanitize re-escapes text; the fallback holds no markup anyway.
		content := req.Content
		if opts.Sanitize && phase == richtext.PhaseMounted {
			content = richtext.Sanitize(content)
		}
		out := richtext.Render(content, phase, req.Style)
		logger.Debug("rich text rendered", "phase", phase.String(), "bytes", len(content))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(Response{
			Phase:    out.Phase,
			Fallback: out.Fallback,
			Nodes:    out.Nodes,
			HTML:     string(out.HTML()),
		})
	})
}

func decodeRequest(w http.ResponseWriter, r *http.Request, opts Options) (Request, error) {
	if r.Method != http.MethodPost {
		query := r.URL.Query()
		return Request{
			Content: query.Get(opts.ContentParam),
			Phase:   query.Get(opts.PhaseParam),
		}, nil
	}

	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return Request{}, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("richtext: decode request: %w", err)}
	}
	return req, nil
}

func statusOf(err error, fallback int) int {
	var carrier HTTPError
	if errors.As(err, &carrier) && carrier != nil {
		if code := carrier.StatusCode(); code > 0 {
			return code
		}
	}
	return fallback
}

func writeError(w http.ResponseWriter, err error) {
	code := statusOf(err, http.StatusInternalServerError)
	if code < http.StatusInternalServerError {
		http.Error(w, err.Error(), code)
		return
	}
	http.Error(w, http.StatusText(code), code)
}

func writeGuardError(w http.ResponseWriter, err error) {
	code := statusOf(err, http.StatusForbidden)
	http.Error(w, http.StatusText(code), code)
}
