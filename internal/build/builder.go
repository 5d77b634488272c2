// SPDX-License-Identifier: MPL-2.0

package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/br5secrule/addonpack/internal/config"
	"github.com/br5secrule/addonpack/internal/issue"
	"github.com/br5secrule/addonpack/pkg/addon"

	"github.com/charmbracelet/log"
)

// Operations reported in the ActionableError of a failed step.
const (
	OpReadVersion   = "read addon version"
	OpValidateFiles = "validate addon files"
	OpCheckEntries  = "check archive entry names"
	OpPrepareOutput = "create output directory"
	OpArchive       = "create archive"
)

type (
	// Reporter receives progress events from a build.
	Reporter interface {
		// Start is called once the version is known.
		Start(name, version string)
		// Missing is called with every missing file before the build aborts.
		Missing(paths []string)
		// Validated is called when all required files were found.
		Validated(files []string)
		// DirCreated is called when the output directory had to be created.
		DirCreated(dir string)
		// Added is called after each file is written to the archive.
		Added(entry addon.Entry)
		// Archived is called once the archive is finalized.
		Archived(result *addon.ArchiveResult)
	}

	// Builder packages one addon project.
	Builder struct {
		cfg      *config.Config
		root     string
		reporter Reporter
		logger   *log.Logger
	}

	// Option configures a Builder.
	Option func(*Builder)

	// Result describes a successful build.
	Result struct {
		Manifest         *addon.Manifest
		Archive          *addon.ArchiveResult
		CreatedOutputDir bool
	}

	nopReporter struct{}
)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(b *Builder) { b.reporter = r }
}

// WithLogger sets the structured logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// New creates a Builder for the project rooted at root.
func New(cfg *config.Config, root string, opts ...Option) *Builder {
	b := &Builder{
		cfg:      cfg,
		root:     root,
		reporter: nopReporter{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run executes the pipeline. No output directory or archive is created when
// the version cannot be read, a required file is missing, or two files share
// a base name.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	versionPath := b.cfg.VersionPath(b.root)
	b.logger.Debug("reading version", "file", versionPath)
	version, err := addon.ReadVersion(versionPath)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(OpReadVersion).
			WithResource(versionPath).
			WithSuggestion(fmt.Sprintf("Make sure %s exists and has a %q field", b.cfg.VersionFile, addon.VersionKey)).
			Wrap(err).
			BuildError()
	}

	m := b.cfg.Manifest(b.root, version)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	b.reporter.Start(m.Name, m.Version)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := addon.Validate(m); err != nil {
		var missing *addon.MissingFilesError
		if errors.As(err, &missing) {
			b.reporter.Missing(missing.Paths)
		}
		return nil, issue.NewErrorContext().
			WithOperation(OpValidateFiles).
			WithResource(b.root).
			WithSuggestion("Run the build from the addon project directory").
			Wrap(err).
			BuildError()
	}
	if err := addon.CheckEntryNames(m.Entries()); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(OpCheckEntries).
			WithResource(b.root).
			WithSuggestion("Rename one of the files; the archive stores every file at the top level").
			Wrap(err).
			BuildError()
	}
	b.reporter.Validated(m.Files())
	b.checkTOCVersions(m)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outDir := m.OutputPath()
	created, err := addon.EnsureOutputDir(outDir)
	if err != nil {
		return nil, issue.WrapWithContext(err, OpPrepareOutput, outDir)
	}
	if created {
		b.logger.Debug("created output directory", "dir", outDir)
		b.reporter.DirCreated(relativeTo(b.root, outDir))
	}

	archivePath := m.ArchivePath()
	b.logger.Debug("writing archive", "path", archivePath, "level", addon.CompressionLevel)
	res, err := addon.Archive(ctx, m.Entries(), archivePath, func(e addon.Entry) {
		b.logger.Debug("added", "file", e.Source, "entry", e.Name)
		b.reporter.Added(e)
	})
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(OpArchive).
			WithResource(archivePath).
			WithSuggestion("Check free disk space and write permissions on " + outDir).
			Wrap(err).
			BuildError()
	}
	b.reporter.Archived(res)

	return &Result{
		Manifest:         m,
		Archive:          res,
		CreatedOutputDir: created,
	}, nil
}

// checkTOCVersions warns when a .toc manifest declares a different version
// than the metadata file. It never fails the build.
func (b *Builder) checkTOCVersions(m *addon.Manifest) {
	for _, e := range m.Entries() {
		if !strings.EqualFold(filepath.Ext(e.Name), addon.TOCExt) {
			continue
		}
		tocVersion, ok, err := addon.TOCVersion(e.Source)
		if err != nil {
			b.logger.Warn("could not read toc version", "file", e.Name, "err", err)
			continue
		}
		if ok && tocVersion != m.Version {
			b.logger.Warn("toc version differs from metadata version",
				"file", e.Name, "toc", tocVersion, "metadata", m.Version)
		}
	}
}

func relativeTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func (nopReporter) Start(string, string) {}
func (nopReporter) Missing([]string) {}
func (nopReporter) Validated([]string) {}
func (nopReporter) DirCreated(string) {}
func (nopReporter) Added(addon.Entry) {}
func (nopReporter) Archived(*addon.ArchiveResult) {}
