// SPDX-License-Identifier: MPL-2.0

package addon

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// ArchiveExt is the extension of produced release archives.
	ArchiveExt = ".zip"
	// DefaultOutputDir is where archives are written when none is configured.
	DefaultOutputDir = "dist"
)

// ErrInvalidManifest is the sentinel error wrapped by InvalidManifestError.
var ErrInvalidManifest = errors.New("invalid manifest")

type (
	// Manifest describes one addon release: what to package and where.
	Manifest struct {
		// Name is the addon folder name (e.g., "br-5secrule").
		Name string
		// Version is the release version, usually read from a metadata file.
		Version string
		// Root is the project directory every relative path is resolved against.
		Root string
		// OutputDir is the directory the archive is written to, relative to Root.
		OutputDir string
		// RuntimeFiles are the files the game client loads (manifest, scripts).
		RuntimeFiles []string
		// DistFiles are shipped alongside the runtime files (README, LICENSE).
		DistFiles []string
	}

	// Entry pairs a file on disk with its name inside the archive.
	Entry struct {
		Source string
		Name   string
	}

	// InvalidManifestError is returned when a Manifest lacks required fields.
	InvalidManifestError struct {
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("invalid manifest: %s", e.Reason)
}

// Unwrap returns ErrInvalidManifest for errors.Is() compatibility.
func (e *InvalidManifestError) Unwrap() error { return ErrInvalidManifest }

// Validate checks that the manifest can produce an archive.
func (m *Manifest) Validate() error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return &InvalidManifestError{Reason: "addon name is empty"}
	case strings.ContainsAny(m.Name, `/\`):
		return &InvalidManifestError{Reason: fmt.Sprintf("addon name %q must not contain path separators", m.Name)}
	case strings.TrimSpace(m.Version) == "":
		return &InvalidManifestError{Reason: "version is empty"}
	case len(m.RuntimeFiles)+len(m.DistFiles) == 0:
		return &InvalidManifestError{Reason: "no files to package"}
	}
	return nil
}

// Files returns the runtime files followed by the distribution files.
func (m *Manifest) Files() []string {
	files := make([]string, 0, len(m.RuntimeFiles)+len(m.DistFiles))
	files = append(files, m.RuntimeFiles...)
	return append(files, m.DistFiles...)
}

// ArchiveName returns "<name>-v<version>.zip".
func (m *Manifest) ArchiveName() string {
	return m.Name + "-v" + m.Version + ArchiveExt
}

// OutputPath returns the output directory resolved against Root.
func (m *Manifest) OutputPath() string {
	dir := m.OutputDir
	if dir == "" {
		dir = DefaultOutputDir
	}
	return m.resolve(dir)
}

// ArchivePath returns the full path of the archive this manifest produces.
func (m *Manifest) ArchivePath() string {
	return filepath.Join(m.OutputPath(), m.ArchiveName())
}

// Entries maps every file to a flat archive entry named after its base name.
func (m *Manifest) Entries() []Entry {
	files := m.Files()
	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		entries = append(entries, Entry{
			Source: m.resolve(f),
			Name:   filepath.Base(filepath.FromSlash(f)),
		})
	}
	return entries
}

func (m *Manifest) resolve(p string) string {
	native := filepath.FromSlash(p)
	if filepath.IsAbs(native) || m.Root == "" {
		return native
	}
	return filepath.Join(m.Root, native)
}
