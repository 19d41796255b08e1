package cmd

import (
	"fmt"

	"viavictl/internal/pipeline"
	"viavictl/internal/tui"

	"github.com/spf13/cobra"
)

// For mocking in tests
var pickTest = tui.Pick

func newPickCmd(opts *runOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a Viavi test interactively and run it",
		Long: `Opens the list of Viavi tests in the terminal. Type / to filter,
press enter to create the pipeline for the highlighted test, q or esc to quit
without running anything. With a filter applied, esc clears it first.

The flags are the same as for running a test directly, without --testid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, opts)
		},
	}

	addTokenFlags(cmd.Flags(), opts)
	addBuildFlags(cmd.Flags(), opts)
	return cmd
}

func runPick(cmd *cobra.Command, opts *runOptions) error {
	cfg, printer, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	opts.params.TimeoutSet = cmd.Flags().Changed("timeout")

	params, err := pipeline.ValidateForSelection(opts.params)
	if err != nil {
		return err
	}

	tests, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	test, ok, err := pickTest(tests, params.Branch)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "No test selected.")
		return nil
	}

	params.TestID = test.ID
	return triggerTest(cmd.Context(), cfg, printer, params, test, opts.copyURL)
}
