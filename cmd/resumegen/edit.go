package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	resumegen "github.com/goliatone/go-resumegen"
	"github.com/goliatone/go-resumegen/pkg/openapi"
	"github.com/goliatone/go-resumegen/pkg/renderers/tui"
	"github.com/goliatone/go-resumegen/pkg/resume"
)

// newPromptDriver is replaced in tests.
var newPromptDriver = func(cmd *cobra.Command) tui.PromptDriver {
	in, inOK := cmd.InOrStdin().(terminal.FileReader)
	out, outOK := cmd.OutOrStdout().(terminal.FileWriter)
	if inOK && outOK {
		return tui.NewSurveyDriverWithStdio(in, out, cmd.ErrOrStderr())
	}
	return tui.NewSurveyDriver()
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit personal info in the terminal",
		Long:  `Prompts for every personal info field, applies the changed answers and prints the resulting resume as YAML.`,
		Args:  cobra.NoArgs,
		RunE:  runEdit,
	}
	cmd.Flags().String("seed", "", "YAML resume to start from (RESUMEGEN_SEED_FILE)")
	cmd.Flags().Bool("confirm", false, "ask before applying changes")
	return cmd
}

func runEdit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}
	confirm, _ := cmd.Flags().GetBool("confirm")

	ctx := cmd.Context()
	store := resumegen.NewStore(seed)
	form, err := openapi.BuildPersonalInfoForm(ctx)
	if err != nil {
		return err
	}

	result, err := tui.New(form,
		tui.WithPromptDriver(newPromptDriver(cmd)),
		tui.WithConfirm(confirm),
		tui.WithSummaryPreview(true),
	).Run(ctx, store)
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}

	snapshot, err := store.Snapshot(ctx)
	if err != nil {
		return err
	}
	if !result.Changed() {
		cmd.PrintErrln("no changes")
	}
	return resume.Encode(cmd.OutOrStdout(), snapshot)
}
