// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/br5secrule/addonpack/internal/build"
	"github.com/br5secrule/addonpack/internal/config"
	"github.com/br5secrule/addonpack/internal/issue"
	"github.com/br5secrule/addonpack/pkg/addon"

	"github.com/spf13/cobra"
)

// buildCmd is the explicit form of running addonpack without a subcommand
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Validate the addon files and write the release archive",
	Long: `Validate the addon files and write the release archive.

The build stops before creating anything if a required file is missing,
listing every missing file. Re-running the build replaces the archive.

Examples:
  addonpack build
  addonpack build --dir ./br-5secrule`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

// consoleReporter prints build progress in the style of the release script.
type consoleReporter struct {
	out io.Writer
	err io.Writer
}

func (r *consoleReporter) Start(name, version string) {
	fmt.Fprintln(r.out, TitleStyle.Render(fmt.Sprintf("Building %s v%s...", name, version)))
	fmt.Fprintln(r.out)
}

func (r *consoleReporter) Missing(paths []string) {
	fmt.Fprintf(r.err, "%s %s\n", errorIcon, ErrorStyle.Render("Missing required files:"))
	for _, p := range paths {
		fmt.Fprintf(r.err, "   - %s\n", p)
	}
}

func (r *consoleReporter) Validated([]string) {
	fmt.Fprintf(r.out, "%s All required files found\n", successIcon)
}

func (r *consoleReporter) DirCreated(dir string) {
	fmt.Fprintf(r.out, "%s Created %s directory\n", successIcon, PathStyle.Render(dir))
}

func (r *consoleReporter) Added(e addon.Entry) {
	fmt.Fprintf(r.out, "   %s %s\n", addedIcon, e.Name)
}

func (r *consoleReporter) Archived(res *addon.ArchiveResult) {
	fmt.Fprintf(r.out, "%s Created %s (%s)\n", successIcon, filepath.Base(res.Path), formatFileSize(res.Size))
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, root, err := loadProject(cmd)
	if err != nil {
		showIssue(cmd.ErrOrStderr(), issue.ConfigLoadFailedId, config.ColorSchemeAuto)
		return failBuild(err)
	}

	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr(), verbose)
	reporter := &consoleReporter{out: out, err: cmd.ErrOrStderr()}

	res, err := build.New(cfg, root,
		build.WithReporter(reporter),
		build.WithLogger(logger),
	).Run(cmd.Context())
	if err != nil {
		if id, ok := classifyBuildError(err); ok {
			showIssue(cmd.ErrOrStderr(), id, cfg.UI.ColorScheme)
		}
		if verbose {
			logger.Debug("build failed", "detail", formatErrorForDisplay(err, true))
		}
		return failBuild(err)
	}

	archiveRel := res.Archive.Path
	if rel, relErr := filepath.Rel(root, res.Archive.Path); relErr == nil {
		archiveRel = rel
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, SuccessStyle.Render("Build completed successfully!"))
	fmt.Fprintf(out, "Package: %s\n", PathStyle.Render(archiveRel))
	fmt.Fprintln(out)

	guide, err := renderInstallGuide(res.Manifest, cfg.UI.ColorScheme)
	if err != nil {
		logger.Warn("could not render installation instructions", "err", err)
		guide = installGuideMarkdown(res.Manifest)
	}
	fmt.Fprint(out, guide)

	return nil
}

// classifyBuildError maps a failed build step to its guidance issue.
func classifyBuildError(err error) (issue.Id, bool) {
	var ae *issue.ActionableError
	switch {
	case errors.Is(err, addon.ErrMissingFiles):
		return issue.MissingFilesId, true
	case errors.Is(err, addon.ErrDuplicateEntry):
		return issue.DuplicateEntryId, true
	case !errors.As(err, &ae):
		return 0, false
	case ae.Operation == build.OpReadVersion:
		return issue.VersionNotFoundId, true
	case ae.Operation == build.OpArchive:
		return issue.ArchiveFailedId, true
	default:
		return 0, false
	}
}

// showIssue renders guidance for id. Rendering failures are ignored; the
// error itself is still reported by the caller.
func showIssue(w io.Writer, id issue.Id, scheme config.ColorScheme) {
	i := issue.Get(id)
	if i == nil {
		return
	}
	rendered, err := i.Render(scheme.String())
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}
