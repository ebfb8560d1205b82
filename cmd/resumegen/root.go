package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-resumegen/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resumegen",
		Short:         "Resume builder with a pre-mount safe rich text renderer",
		Long:          `resumegen serves the resume editor, renders rich text snippets and edits personal info from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newRenderCmd(), newEditCmd())
	return root
}

// loadConfig reads the environment and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	override := func(name string, target *string) {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			return
		}
		if v, err := flags.GetString(name); err == nil {
			*target = v
		}
	}
	override("addr", &cfg.HTTPAddr)
	override("seed", &cfg.SeedFile)
	override("log-level", &cfg.LogLevel)
	override("theme", &cfg.Theme)
	override("variant", &cfg.ThemeVariant)
	if flags.Lookup("shutdown-timeout") != nil && flags.Changed("shutdown-timeout") {
		if d, err := flags.GetDuration("shutdown-timeout"); err == nil {
			cfg.ShutdownTimeout = d
		}
	}
	return cfg, nil
}
