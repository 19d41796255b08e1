package cmd

import (
	"context"
	"fmt"
	"os"

	"viavictl/pkg/logging"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update viavictl to the latest version",
		Long: `Checks the viavictl release project on GitLab for a newer version
and replaces the running binary with it. Set GITLAB_TOKEN if the release
project is private.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	return selfUpdate(cmd.Context(), cmd.Root().Version)
}

// selfUpdate replaces the running binary with the latest release newer than
// currentVersion.
func selfUpdate(ctx context.Context, currentVersion string) error {
	logging.Debug(subsystem, "Checking for a release newer than %q", currentVersion)
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	source, err := selfupdate.NewGitLabSource(selfupdate.GitLabConfig{
		APIToken: os.Getenv("GITLAB_TOKEN"),
		BaseURL:  cfg.GitLab.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create GitLab release source: %w", err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(cfg.GitLab.ReleaseProject))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", cfg.GitLab.ReleaseProject)
	}

	if latest.LessOrEqual(currentVersion) {
		fmt.Printf("Current version (%s) is the latest.\n", currentVersion)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	logging.Debug(subsystem, "Updating %s from %s to %s", exe, currentVersion, latest.Version())

	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version %s\n", latest.Version())
	return nil
}
