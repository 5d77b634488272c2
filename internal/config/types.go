// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/br5secrule/addonpack/pkg/addon"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
	// ColorSchemeNoTTY disables colors and decorations.
	ColorSchemeNoTTY ColorScheme = "notty"
)

// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
var ErrInvalidColorScheme = errors.New("invalid color scheme")

type (
	// ColorScheme selects how styled output is rendered.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// Config holds the project configuration.
	Config struct {
		// Name is the addon folder name
		Name string `json:"name" mapstructure:"name"`
		// VersionFile is the metadata file the version is read from
		VersionFile string `json:"version_file" mapstructure:"version_file"`
		// OutputDir is where the archive is written
		OutputDir string `json:"output_dir" mapstructure:"output_dir"`
		// RuntimeFiles are the files the game client loads
		RuntimeFiles []string `json:"runtime_files" mapstructure:"runtime_files"`
		// DistFiles are documentation and license files shipped with the addon
		DistFiles []string `json:"dist_files" mapstructure:"dist_files"`
		// UI configures console output
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures console output.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light, notty)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight, ColorSchemeNoTTY:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// DefaultConfig returns the configuration for the br-5secrule addon.
func DefaultConfig() *Config {
	return &Config{
		Name:        "br-5secrule",
		VersionFile: "package.json",
		OutputDir:   addon.DefaultOutputDir,
		RuntimeFiles: []string{
			"br-5secrule.toc",
			"br-5secrule.lua",
			"br-5secrule_Settings.lua",
			"br-5secrule_Utils.lua",
			"br-5secrule_Cmd.lua",
		},
		DistFiles: []string{
			"README.md",
			"LICENSE",
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// VersionPath returns the metadata file resolved against root.
func (c *Config) VersionPath(root string) string {
	p := filepath.FromSlash(c.VersionFile)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// Manifest builds the addon manifest for a project root and release version.
func (c *Config) Manifest(root, version string) *addon.Manifest {
	return &addon.Manifest{
		Name:         c.Name,
		Version:      version,
		Root:         root,
		OutputDir:    c.OutputDir,
		RuntimeFiles: append([]string(nil), c.RuntimeFiles...),
		DistFiles:    append([]string(nil), c.DistFiles...),
	}
}
