// SPDX-License-Identifier: MPL-2.0

package build

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/br5secrule/addonpack/internal/config"
	"github.com/br5secrule/addonpack/internal/issue"
	"github.com/br5secrule/addonpack/internal/testutil"
	"github.com/br5secrule/addonpack/pkg/addon"

	"github.com/charmbracelet/log"
)

type recordingReporter struct {
	started  string
	missing  []string
	valid    []string
	created  string
	added    []string
	archived *addon.ArchiveResult
}

func (r *recordingReporter) Start(name, version string) { r.started = name + "@" + version }
func (r *recordingReporter) Missing(paths []string) { r.missing = paths }
func (r *recordingReporter) Validated(files []string) { r.valid = files }
func (r *recordingReporter) DirCreated(dir string) { r.created = dir }
func (r *recordingReporter) Added(e addon.Entry) { r.added = append(r.added, e.Name) }
func (r *recordingReporter) Archived(res *addon.ArchiveResult) { r.archived = res }

func exampleConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Name = "a"
	cfg.RuntimeFiles = []string{"a.toc", "a.lua"}
	cfg.DistFiles = []string{"README.md", "LICENSE"}
	return cfg
}

func writeProject(t *testing.T, root string, files ...string) {
	t.Helper()
	testutil.MustWriteFile(t, filepath.Join(root, "package.json"), `{"name": "a", "version": "1.2.0"}`)
	for _, f := range files {
		testutil.MustWriteFile(t, filepath.Join(root, f), "-- "+f+"\n")
	}
}

func TestBuilder_Run(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeProject(t, root, "a.toc", "a.lua", "README.md", "LICENSE")

	rep := &recordingReporter{}
	res, err := New(exampleConfig(), root, WithReporter(rep)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	wantPath := filepath.Join(root, "dist", "a-v1.2.0.zip")
	if res.Archive.Path != wantPath {
		t.Errorf("archive path = %q, want %q", res.Archive.Path, wantPath)
	}
	if !res.CreatedOutputDir {
		t.Error("first build should create the output directory")
	}

	entries, err := addon.ListEntries(wantPath)
	if err != nil {
		t.Fatalf("ListEntries() failed: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	want := []string{"a.toc", "a.lua", "README.md", "LICENSE"}
	if !slices.Equal(names, want) {
		t.Errorf("archive entries = %v, want %v", names, want)
	}

	if rep.started != "a@1.2.0" {
		t.Errorf("Start() saw %q", rep.started)
	}
	if !slices.Equal(rep.valid, want) || !slices.Equal(rep.added, want) {
		t.Errorf("reporter saw validated=%v added=%v", rep.valid, rep.added)
	}
	if rep.created != "dist" {
		t.Errorf("DirCreated() saw %q, want dist", rep.created)
	}
	if rep.archived == nil || rep.archived.Size <= 0 {
		t.Errorf("Archived() saw %+v", rep.archived)
	}
}

func TestBuilder_RunTwice(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeProject(t, root, "a.toc", "a.lua", "README.md", "LICENSE")

	for i := range 2 {
		rep := &recordingReporter{}
		res, err := New(exampleConfig(), root, WithReporter(rep)).Run(context.Background())
		if err != nil {
			t.Fatalf("run %d failed: %v", i+1, err)
		}
		if i == 1 && (res.CreatedOutputDir || rep.created != "") {
			t.Error("second run should reuse the output directory")
		}
	}

	files, err := os.ReadDir(filepath.Join(root, "dist"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Errorf("dist has %d files, want 1", len(files))
	}
}

func TestBuilder_MissingFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeProject(t, root, "a.toc", "README.md")

	rep := &recordingReporter{}
	_, err := New(exampleConfig(), root, WithReporter(rep)).Run(context.Background())
	if !errors.Is(err, addon.ErrMissingFiles) {
		t.Fatalf("Run() = %v, want ErrMissingFiles", err)
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Operation != OpValidateFiles {
		t.Errorf("expected ActionableError for %q, got %v", OpValidateFiles, err)
	}
	if !slices.Equal(rep.missing, []string{"a.lua", "LICENSE"}) {
		t.Errorf("Missing() saw %v", rep.missing)
	}
	if !strings.Contains(err.Error(), "a.lua") || !strings.Contains(err.Error(), "LICENSE") {
		t.Errorf("error should name every missing file: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(root, "dist")); !os.IsNotExist(statErr) {
		t.Error("dist must not be created when files are missing")
	}
}

func TestBuilder_VersionErrors(t *testing.T) {
	t.Parallel()

	t.Run("no metadata file", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		testutil.MustWriteFile(t, filepath.Join(root, "a.toc"), "")

		_, err := New(exampleConfig(), root).Run(context.Background())
		var ae *issue.ActionableError
		if !errors.As(err, &ae) || ae.Operation != OpReadVersion {
			t.Fatalf("Run() = %v, want %q failure", err, OpReadVersion)
		}
		if _, statErr := os.Stat(filepath.Join(root, "dist")); !os.IsNotExist(statErr) {
			t.Error("dist must not be created without a version")
		}
	})

	t.Run("empty version", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		testutil.MustWriteFile(t, filepath.Join(root, "package.json"), `{"version": ""}`)

		_, err := New(exampleConfig(), root).Run(context.Background())
		if !errors.Is(err, addon.ErrEmptyVersion) {
			t.Errorf("Run() = %v, want ErrEmptyVersion", err)
		}
	})
}

func TestBuilder_OutputPathIsFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeProject(t, root, "a.toc", "a.lua", "README.md", "LICENSE")
	testutil.MustWriteFile(t, filepath.Join(root, "dist"), "")

	_, err := New(exampleConfig(), root).Run(context.Background())
	if !errors.Is(err, addon.ErrOutputNotDir) {
		t.Errorf("Run() = %v, want ErrOutputNotDir", err)
	}
}

func TestBuilder_TOCVersionMismatchWarns(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeProject(t, root, "a.lua", "README.md", "LICENSE")
	testutil.MustWriteFile(t, filepath.Join(root, "a.toc"), "## Title: A\n## Version: 1.1.0\n")

	var logs bytes.Buffer
	logger := log.New(&logs)
	if _, err := New(exampleConfig(), root, WithLogger(logger)).Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !strings.Contains(logs.String(), "toc version differs") {
		t.Errorf("expected toc mismatch warning, got logs:\n%s", logs.String())
	}
}

func TestBuilder_Canceled(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeProject(t, root, "a.toc", "a.lua", "README.md", "LICENSE")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(exampleConfig(), root).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(filepath.Join(root, "dist")); !os.IsNotExist(err) {
		t.Error("canceled build must not create dist")
	}
}

func TestBuilder_DuplicateBaseNames(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeProject(t, root, "a.toc", "sub/a.toc", "README.md", "LICENSE")

	cfg := exampleConfig()
	cfg.RuntimeFiles = []string{"a.toc", "sub/a.toc"}

	rep := &recordingReporter{}
	_, err := New(cfg, root, WithReporter(rep)).Run(context.Background())
	if !errors.Is(err, addon.ErrDuplicateEntry) {
		t.Fatalf("Run() = %v, want ErrDuplicateEntry", err)
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Operation != OpCheckEntries {
		t.Errorf("expected ActionableError for %q, got %v", OpCheckEntries, err)
	}
	if rep.created != "" {
		t.Errorf("DirCreated(%q) called for a rejected build", rep.created)
	}
	if _, statErr := os.Stat(filepath.Join(root, "dist")); !os.IsNotExist(statErr) {
		t.Error("dist must not be created when entry names collide")
	}
}

func TestBuilder_ArchiveWriteFails(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeProject(t, root, "a.toc", "a.lua", "README.md", "LICENSE")
	testutil.MustMkdirAll(t, filepath.Join(root, "dist", "a-v1.2.0.zip"), 0o755)

	rep := &recordingReporter{}
	_, err := New(exampleConfig(), root, WithReporter(rep)).Run(context.Background())

	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Operation != OpArchive {
		t.Fatalf("Run() = %v, want %q failure", err, OpArchive)
	}
	if ae.Resource != filepath.Join(root, "dist", "a-v1.2.0.zip") {
		t.Errorf("Resource = %q, want the archive path", ae.Resource)
	}
	if rep.archived != nil {
		t.Error("Archived() called for a failed archive")
	}
}
