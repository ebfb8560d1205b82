// Package server wires the resume builder components, previews and runtime
// assets into a chi router.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	resumegen "github.com/goliatone/go-resumegen"
	"github.com/goliatone/go-resumegen/components/personalinfo"
	richtextcomponent "github.com/goliatone/go-resumegen/components/richtext"
	"github.com/goliatone/go-resumegen/internal/logging"
	"github.com/goliatone/go-resumegen/pkg/openapi"
	"github.com/goliatone/go-resumegen/pkg/render"
	htmlrenderer "github.com/goliatone/go-resumegen/pkg/renderers/html"
	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/richtext"
)

const (
	assetsPrefix    = "/assets/"
	previewPath     = "/api/resume"
	openAPIPath     = "/api/openapi.yaml"
	pageTitle       = "Resume builder"
	readTimeout     = 10 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownDefault = 5 * time.Second
)

// Options configures the server. Store is required; the rest have defaults.
type Options struct {
	Store    resume.Store
	Registry *render.Registry
	Pages    *htmlrenderer.Renderer
	Theme    *render.ThemeConfig
	Logger   *slog.Logger
}

// Server serves the editor page and its APIs.
type Server struct {
	store    resume.Store
	registry *render.Registry
	pages    *htmlrenderer.Renderer
	theme    *render.ThemeConfig
	logger   *slog.Logger
	router   chi.Router
	cancel   func()
}

// New builds the server and its router.
func New(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, errors.New("server: store is required")
	}
	s := &Server{
		store:    opts.Store,
		registry: opts.Registry,
		pages:    opts.Pages,
		theme:    opts.Theme,
		logger:   opts.Logger,
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.pages == nil {
		pages, err := htmlrenderer.New()
		if err != nil {
			return nil, fmt.Errorf("server: page renderer: %w", err)
		}
		s.pages = pages
	}
	if s.registry == nil {
		registry := render.NewRegistry()
		if err := registry.Register(s.pages); err != nil {
			return nil, err
		}
		s.registry = registry
	}

	s.cancel = s.store.Subscribe(func(c resume.Change) {
		s.logger.Info("resume updated", "field", c.Field.String(), "bytes", len(c.Value))
	})

	router, err := s.routes()
	if err != nil {
		s.cancel()
		return nil, err
	}
	s.router = router
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the store subscription.
func (s *Server) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Server) routes() (chi.Router, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(s.bindStore)

	r.Get("/", s.handlePage)
	r.Get(previewPath, s.handlePreview)
	r.Get(openAPIPath, s.handleOpenAPI)
	r.Handle(assetsPrefix+"*", http.StripPrefix(assetsPrefix, http.FileServerFS(resumegen.RuntimeAssetsFS())))

	if _, err := personalinfo.New(
		personalinfo.WithRenderer(s.pages),
		personalinfo.WithRedirectPath("/"),
		personalinfo.WithLogger(s.logger),
	).RegisterRoutes(r, ""); err != nil {
		return nil, err
	}
	if _, err := richtextcomponent.New(
		richtextcomponent.WithSanitize(true),
		richtextcomponent.WithLogger(s.logger),
	).RegisterRoutes(r, ""); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// bindStore exposes the store to handlers through the request context.
func (s *Server) bindStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(resume.WithStore(r.Context(), s.store)))
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	form, err := resumegen.PersonalInfoForm(ctx, s.store)
	if err != nil {
		s.fail(w, "build form", err)
		return
	}
	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		s.fail(w, "snapshot", err)
		return
	}

	body, err := s.pages.RenderPage(ctx, htmlrenderer.Page{
		Title:            pageTitle,
		Form:             form,
		Resume:           snapshot,
		Options:          render.RenderOptions{Phase: richtext.PhaseUnmounted, Theme: s.theme},
		Stylesheets:      []string{assetsPrefix + resumegen.StylesheetName},
		Scripts:          []string{assetsPrefix + resumegen.RuntimeScriptName},
		RichTextEndpoint: richtextcomponent.MountPath(""),
		PreviewEndpoint:  previewPath,
	})
	if err != nil {
		s.fail(w, "render page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	phase, err := richtext.ParsePhase(query.Get("phase"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, contentType, err := resumegen.RenderPreview(r.Context(), s.registry, s.store, strings.TrimSpace(query.Get("format")),
		render.RenderOptions{Phase: phase, Theme: s.theme})
	if err != nil {
		if errors.Is(err, render.ErrRendererNotFound) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.fail(w, "render preview", err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(out)
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapi.PersonalInfoSpec())
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	s.logger.Error("request failed", "op", op, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	if shutdownTimeout <= 0 {
		shutdownTimeout = shutdownDefault
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readTimeout,
		IdleTimeout:       idleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
