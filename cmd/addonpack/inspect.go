// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/br5secrule/addonpack/pkg/addon"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [archive]",
	Short: "List the entries of a built addon archive",
	Long: `List the entries of a built addon archive with their sizes.

Without an argument, the archive the current project would produce is
inspected. A relative archive path is resolved against --dir. Entries stored under a directory are flagged, since the game
expects every file at the top level of the addon folder.

Examples:
  addonpack inspect
  addonpack inspect dist/br-5secrule-v1.0.0.zip`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	var archivePath string
	if len(args) == 1 {
		archivePath = args[0]
		if !filepath.IsAbs(archivePath) && projectDir != "" {
			archivePath = filepath.Join(projectDir, archivePath)
		}
	} else {
		cfg, root, err := loadProject(cmd)
		if err != nil {
			return failBuild(err)
		}
		version, err := addon.ReadVersion(cfg.VersionPath(root))
		if err != nil {
			return failBuild(err)
		}
		archivePath = cfg.Manifest(root, version).ArchivePath()
	}

	entries, err := addon.ListEntries(archivePath)
	if err != nil {
		return failBuild(fmt.Errorf("%s: %w", archivePath, err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render(archivePath))
	fmt.Fprintln(out)

	var total uint64
	nested := 0
	for _, e := range entries {
		total += e.Size
		line := fmt.Sprintf("   %-32s %10s", e.Name, formatFileSize(int64(e.Size)))
		if strings.ContainsAny(e.Name, `/\`) {
			nested++
			line += " " + WarningStyle.Render("(not at top level)")
		}
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d entries, %s uncompressed\n", len(entries), formatFileSize(int64(total)))
	if nested > 0 {
		fmt.Fprintln(out, WarningStyle.Render(
			fmt.Sprintf("! %d entries are inside folders; the game only loads top-level addon files", nested)))
	}
	return nil
}
