// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for addonpack.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/br5secrule/addonpack/internal/config"
	"github.com/br5secrule/addonpack/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom project config file
	cfgFile string
	// projectDir is the addon project root
	projectDir string

	// rootCmd builds the addon when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "addonpack",
		Short: "Package a game addon into a versioned zip archive",
		Long: TitleStyle.Render("addonpack") + SubtitleStyle.Render(" - Package a game addon for distribution") + `

addonpack checks that every addon file is present, creates the output
directory, and writes <name>-v<version>.zip with the files stored flat so
the archive extracts straight into Interface/AddOns/<name>.

The version is read from package.json. An optional addonpack.cue in the
project directory overrides the addon name and file lists.

` + SubtitleStyle.Render("Examples:") + `
  addonpack                     Build the addon in the current directory
  addonpack -C ./br-5secrule    Build the addon in another directory
  addonpack inspect             List the entries of the built archive
  addonpack config init         Write a default addonpack.cue`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runBuild,
	}
)

func init() {
	rootCmd.Version = getVersionString()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "project config file (default is <dir>/addonpack.cue)")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", ".", "addon project directory")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(rootCmd.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.Code.Validate() == nil {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// loadProject resolves the project root and loads its configuration.
// The verbose flag is raised when the config asks for it.
func loadProject(cmd *cobra.Command) (*config.Config, string, error) {
	root := projectDir
	if root == "" {
		root = "."
	}

	cfg, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{
		ConfigFilePath: cfgFile,
		ProjectDir:     root,
	})
	if err != nil {
		return nil, "", err
	}

	if !verbose {
		verbose = cfg.UI.Verbose
	}
	return cfg, root, nil
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
