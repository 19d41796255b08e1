package cmd

import (
	"context"
	"errors"
	"fmt"

	"viavictl/internal/catalog"
	"viavictl/internal/cli"
	"viavictl/internal/config"
	"viavictl/internal/pipeline"
	"viavictl/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

const subsystem = "CLI"

var errTestNotFound = errors.New("not found")

// pipelineRunner is what the commands need from a pipeline.Trigger.
type pipelineRunner interface {
	Project() string
	Variables(p pipeline.RunParameters, test catalog.Test) pipeline.Variables
	Run(ctx context.Context, p pipeline.RunParameters, test catalog.Test) (string, error)
}

// For mocking in tests
var loadConfig = config.LoadConfig
var newTrigger = func(cfg config.ViavictlConfig, token string) (pipelineRunner, error) {
	return pipeline.NewTrigger(cfg, token)
}
var writeClipboard = clipboard.WriteAll

// initLogging sends log records at --log-level and above to the command's stderr.
func initLogging(cmd *cobra.Command, opts *runOptions) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	return nil
}

// setup resolves the output format and loads the layered configuration.
func setup(cmd *cobra.Command, opts *runOptions) (config.ViavictlConfig, *cli.Printer, error) {
	format, err := cli.ParseOutputFormat(opts.output)
	if err != nil {
		return config.ViavictlConfig{}, nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		return config.ViavictlConfig{}, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}
	return cfg, cli.NewPrinter(cmd.OutOrStdout(), format), nil
}

func loadCatalog(cfg config.ViavictlConfig) ([]catalog.Test, error) {
	tests, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	logging.Debug(subsystem, "Loaded %d tests from %s", len(tests), cfg.Catalog.Path)
	return tests, nil
}

func runRoot(cmd *cobra.Command, opts *runOptions) error {
	cfg, printer, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	opts.params.TimeoutSet = cmd.Flags().Changed("timeout")

	params, err := pipeline.Validate(opts.params)
	if err != nil {
		return err
	}

	tests, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	if params.ListOnly {
		return printer.PrintTestList(tests)
	}

	test, ok := catalog.Find(tests, params.TestID)
	if !ok {
		return fmt.Errorf("testid %s %w", params.TestID, errTestNotFound)
	}

	return triggerTest(cmd.Context(), cfg, printer, params, test, opts.copyURL)
}

// triggerTest creates the pipeline for test and reports its URL.
func triggerTest(ctx context.Context, cfg config.ViavictlConfig, printer *cli.Printer, params pipeline.RunParameters, test catalog.Test, copyURL bool) error {
	trigger, err := newTrigger(cfg, params.Token)
	if err != nil {
		return err
	}

	printer.PrintRunSummary(params, test, trigger.Variables(params, test))

	url, err := trigger.Run(ctx, params, test)
	if err != nil {
		logging.Error(subsystem, err, "Pipeline for test %q on %s was not created", test.ID, trigger.Project())
		return err
	}
	printer.PrintPipelineCreated(url)

	if copyURL {
		copyToClipboard(url)
	}
	return nil
}

func copyToClipboard(url string) {
	if err := writeClipboard(url); err != nil {
		logging.Warn(subsystem, "Failed to copy pipeline URL to clipboard: %v", err)
		return
	}
	logging.Info(subsystem, "Pipeline URL copied to clipboard")
}
