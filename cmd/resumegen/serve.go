package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	resumegen "github.com/goliatone/go-resumegen"
	"github.com/goliatone/go-resumegen/internal/logging"
	"github.com/goliatone/go-resumegen/internal/server"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/resume"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the resume editor HTTP server",
		Long:  `Serves the editor page, the personal info form, the rich text API and the preview API.`,
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	flags := cmd.Flags()
	flags.String("addr", "", "listen address (RESUMEGEN_HTTP_ADDR)")
	flags.String("seed", "", "YAML resume used to seed the store (RESUMEGEN_SEED_FILE)")
	flags.String("log-level", "", "debug, info, warn or error (RESUMEGEN_LOG_LEVEL)")
	flags.String("theme", "", "theme name (RESUMEGEN_THEME)")
	flags.String("variant", "", "theme variant (RESUMEGEN_THEME_VARIANT)")
	flags.Duration("shutdown-timeout", 0, "graceful shutdown timeout (RESUMEGEN_SHUTDOWN_TIMEOUT)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(level)

	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}
	store := resumegen.NewStore(seed)

	selector := render.NewStaticSelector(cfg.ThemeVariant, render.DefaultThemeManifest())
	theme, err := render.ResolveTheme(selector, cfg.Theme, cfg.ThemeVariant)
	if err != nil {
		return err
	}
	registry, err := resumegen.NewRegistry()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Options{
		Store:    store,
		Registry: registry,
		Theme:    theme,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, cfg.HTTPAddr, cfg.ShutdownTimeout); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func loadSeed(path string) (resume.Resume, error) {
	if path == "" {
		return resume.Resume{}, nil
	}
	seed, err := resume.LoadFile(path)
	if err != nil {
		return resume.Resume{}, fmt.Errorf("load seed: %w", err)
	}
	return seed, nil
}
