// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/br5secrule/addonpack/internal/config"

	"github.com/spf13/cobra"
)

var (
	// configForce allows config init to replace an existing file
	configForce bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Show or create the project configuration",
		Long: `Show or create the addonpack.cue project configuration.

Every field of addonpack.cue is optional. Without the file, addonpack
packages the br-5secrule addon layout.`,
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a default addonpack.cue in the project directory",
		Long: `Write a default addonpack.cue in the project directory, or to the
file named by --config.`,
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
)

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, root, err := loadProject(cmd)
	if err != nil {
		return failBuild(err)
	}

	source := config.ResolvePath(config.LoadOptions{ConfigFilePath: cfgFile, ProjectDir: root})
	if source == "" {
		source = "(defaults)"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n\n", SubtitleStyle.Render("Source:"), PathStyle.Render(source))
	fmt.Fprint(out, config.GenerateCUE(cfg))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	dir := projectDir
	if dir == "" {
		dir = "."
	}

	var (
		path string
		err  error
	)
	if cfgFile != "" {
		path, err = config.WriteDefaultTo(cfgFile, configForce)
	} else {
		path, err = config.WriteDefault(dir, configForce)
	}
	if err != nil {
		return failBuild(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", successIcon, PathStyle.Render(path))
	return nil
}
