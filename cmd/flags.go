package cmd

import (
	"viavictl/internal/cli"
	"viavictl/internal/pipeline"

	"github.com/spf13/pflag"
)

// runOptions collects the flag values of a run.
type runOptions struct {
	params      pipeline.RunParameters
	catalogPath string
	copyURL     bool
	logLevel    string
	output      string
}

// addRunFlags registers the flags that describe a pipeline run. They are
// shared by the root command and pick, which differ only in how the test is chosen.
func addRunFlags(fs *pflag.FlagSet, opts *runOptions) {
	addTokenFlags(fs, opts)
	fs.StringVar(&opts.params.TestID, "testid", "", "[REQUIRED] Testid in the campaign.")
	addBuildFlags(fs, opts)
}

func addTokenFlags(fs *pflag.FlagSet, opts *runOptions) {
	fs.StringVar(&opts.params.Token, "token", "", "[REQUIRED] Gitlab private token: https://docs.gitlab.com/ee/user/profile/personal_access_tokens.html#create-a-personal-access-token")
	fs.StringVar(&opts.params.Branch, "branch", "", "[REQUIRED] Remote branch in srsgnb repository.")
}

func addBuildFlags(fs *pflag.FlagSet, opts *runOptions) {
	fs.StringVar(&opts.params.GnbExtra, "srsgnb-extra", "", `Extra arguments passed to the gnb binary. E.g: "log --metrics_level=info"`)
	fs.StringVar(&opts.params.BuildArgs, "build-args", pipeline.DefaultBuildArgs, "Build arguments for the pipeline.")
	fs.StringVar(&opts.params.DPDKVersion, "dpdk-version", pipeline.DefaultDPDKVersion, "DPDK version to use in the pipeline.")
	fs.IntVar(&opts.params.Timeout, "timeout", 0, "Timeout in seconds for the test (default 972800)")
	fs.BoolVar(&opts.copyURL, "copy-url", false, "Copy the created pipeline URL to the clipboard.")
}

func addOutputFlags(fs *pflag.FlagSet, opts *runOptions) {
	fs.StringVar(&opts.catalogPath, "catalog", "", "Path to the Viavi test declaration file (default from config)")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	fs.StringVarP(&opts.output, "output", "o", string(cli.OutputFormatText), "Output format of --testlist: text, json or yaml")
}
