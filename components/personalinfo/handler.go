package personalinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/goliatone/go-resumegen/pkg/model"
	"github.com/goliatone/go-resumegen/pkg/openapi"
	htmlrenderer "github.com/goliatone/go-resumegen/pkg/renderers/html"
	"github.com/goliatone/go-resumegen/pkg/resume"
)

// Update is the payload of a single-field change.
type Update struct {
	Field string `json:"field"`
	Value string `json:"value"`
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
	h := &handler{opts: opts, logger: opts.Logger}
	if h.logger == nil {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return h
}

type handler struct {
	opts   Options
	logger *slog.Logger

	setup    sync.Once
	form     model.FormModel
	renderer FormRenderer
	setupErr error
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodPost:
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodHead, http.MethodPost}, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if h.opts.Guard != nil {
		if err := h.opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return
		}
	}

	store := h.opts.Store
	if store == nil {
		if bound, ok := resume.StoreFromContext(r.Context()); ok {
			store = bound
		}
	}
	if store == nil {
		writeError(w, h.logger, errNoStore)
		return
	}

	if r.Method == http.MethodPost {
		h.update(w, r, store)
		return
	}
	h.render(w, r, store)
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, store resume.Store) {
	form, renderer, err := h.resources(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	snapshot, err := store.Snapshot(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	form, err = model.Apply(form, model.WithValues(snapshot.Personal.Values()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if h.opts.Endpoint != "" {
		form.Endpoint = h.opts.Endpoint
	}

	body, err := renderer.RenderForm(r.Context(), form)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request, store resume.Store) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)

	jsonRequest := isJSON(r.Header.Get("Content-Type"))
	update, err := decodeUpdate(r, jsonRequest)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	name, err := resume.ParseFieldName(update.Field)
	if err != nil {
		writeError(w, h.logger, badRequest(err))
		return
	}
	if err := store.SetField(r.Context(), name, update.Value); err != nil {
		if errors.Is(err, resume.ErrUnknownField) {
			err = badRequest(err)
		}
		writeError(w, h.logger, err)
		return
	}
	h.logger.Debug("personal info field accepted", "field", name.String())

	if jsonRequest {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	target := h.opts.RedirectPath
	if target == "" {
		target = r.URL.Path
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *handler) resources(ctx context.Context) (model.FormModel, FormRenderer, error) {
	h.setup.Do(func() {
		if h.opts.Form != nil {
			h.form = h.opts.Form.Clone()
		} else {
			form, err := openapi.BuildPersonalInfoForm(context.WithoutCancel(ctx))
			if err != nil {
				h.setupErr = fmt.Errorf("personalinfo: build form: %w", err)
				return
			}
			h.form = form
		}

		h.renderer = h.opts.Renderer
		if h.renderer == nil {
			renderer, err := htmlrenderer.New()
			if err != nil {
				h.setupErr = fmt.Errorf("personalinfo: configure renderer: %w", err)
				return
			}
			h.renderer = renderer
		}
	})
	if h.setupErr != nil {
		return model.FormModel{}, nil, h.setupErr
	}
	return h.form.Clone(), h.renderer, nil
}

func decodeUpdate(r *http.Request, jsonRequest bool) (Update, error) {
	var update Update
	if jsonRequest {
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&update); err != nil {
			return Update{}, badRequest(fmt.Errorf("personalinfo: decode update: %w", err))
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return Update{}, badRequest(fmt.Errorf("personalinfo: parse form: %w", err))
		}
		update.Field = r.PostForm.Get("field")
		update.Value = r.PostForm.Get("value")
	}
	if strings.TrimSpace(update.Field) == "" {
		return Update{}, badRequest(errors.New("personalinfo: field is required"))
	}
	return update, nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
