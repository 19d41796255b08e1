package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "viavictl",
		Short: "List the available Viavi tests (--testlist) or run a test",
		Long: `viavictl triggers manual Viavi end-to-end tests on the srsgnb GitLab CI.

Tests are declared in the Viavi test declaration file of the srsgnb
repository. Use --testlist to print them. To run one, pass a GitLab private
token, the remote branch to build and the id of the test:

  viavictl --token $GITLAB_TOKEN --branch my-feature --testid "1UE ideal UDP bidirectional"

A pipeline is created on the branch and its URL is printed.
Personal access tokens: https://docs.gitlab.com/ee/user/profile/personal_access_tokens.html#create-a-personal-access-token`,
		Args: cobra.NoArgs,
		// Inherited by every subcommand.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. missing arguments, unknown test ids)
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&opts.params.ListOnly, "testlist", false, "List the available tests.")
	addRunFlags(cmd.Flags(), opts)
	addOutputFlags(cmd.PersistentFlags(), opts)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSelfUpdateCmd())
	cmd.AddCommand(newPickCmd(opts))

	return cmd
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "viavictl version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
