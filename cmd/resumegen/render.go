package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resumegen/pkg/richtext"
)

type renderFlags struct {
	content string
	phase   string
	format  string
	style   string
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a rich text snippet",
		Long: `Renders restricted HTML content the way the editor does: the plain-text
fallback before mount, or the parsed node tree after mount.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.content, "content", "", `rich text content, "-" reads stdin`)
	cmd.Flags().StringVar(&flags.phase, "phase", "mounted", "mounted or unmounted")
	cmd.Flags().StringVar(&flags.format, "format", "html", "html or json")
	cmd.Flags().StringVar(&flags.style, "style", "", `inline style for the wrapper, e.g. "color: #333"`)
	return cmd
}

func runRender(cmd *cobra.Command, flags renderFlags) error {
	content := flags.content
	if content == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("render: read stdin: %w", err)
		}
		content = string(data)
	}
	phase, err := richtext.ParsePhase(flags.phase)
	if err != nil {
		return err
	}
	out := richtext.Render(content, phase, richtext.ParseStyle(flags.style))

	w := cmd.OutOrStdout()
	switch strings.ToLower(strings.TrimSpace(flags.format)) {
	case "", "html":
		_, err = fmt.Fprintln(w, out.HTML())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("render: unknown format %q", flags.format)
	}
}
