// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/br5secrule/addonpack/internal/issue"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "addonpack"
	// ConfigFileName is the name of the project config file (without extension).
	ConfigFileName = "addonpack"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"

	// maxConfigFileSize bounds how much CUE is read from a project file.
	maxConfigFileSize = 1 << 20
)

// ErrConfigExists is returned when init would overwrite an existing config file.
var ErrConfigExists = errors.New("config file already exists")

//go:embed config_schema.cue
var configSchema string

// FileName returns the project config file name ("addonpack.cue").
func FileName() string {
	return ConfigFileName + "." + ConfigFileExt
}

// ResolvePath returns the config file that loading would use, or "" when the
// project has none and defaults apply.
func ResolvePath(opts LoadOptions) string {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath
	}
	p := filepath.Join(opts.ProjectDir, FileName())
	if fileExists(p) {
		return p
	}
	return ""
}

// loadWithOptions performs option-driven config loading without touching
// package-level state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("name", defaults.Name)
	v.SetDefault("version_file", defaults.VersionFile)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("runtime_files", defaults.RuntimeFiles)
	v.SetDefault("dist_files", defaults.DistFiles)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	if opts.ConfigFilePath != "" && !fileExists(opts.ConfigFilePath) {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(opts.ConfigFilePath).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Run 'addonpack config init' to create a default " + FileName()).
			Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
			BuildError()
	}

	resolvedPath := ResolvePath(opts)
	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the fields match the schema shown by 'addonpack config init'").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if valid, errs := cfg.UI.ColorScheme.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			Wrap(errors.Join(errs...)).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > maxConfigFileSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", path, len(data), maxConfigFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return formatCUEError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return formatCUEError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return formatCUEError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// WriteDefault writes the default configuration to addonpack.cue in dir and
// returns the written path. An existing file is only replaced when overwrite
// is set.
func WriteDefault(dir string, overwrite bool) (string, error) {
	return WriteDefaultTo(filepath.Join(dir, FileName()), overwrite)
}

// WriteDefaultTo writes the default configuration to cfgPath.
func WriteDefaultTo(cfgPath string, overwrite bool) (string, error) {
	if !overwrite && fileExists(cfgPath) {
		return "", fmt.Errorf("%s: %w", cfgPath, ErrConfigExists)
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return cfgPath, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// addonpack project configuration\n")
	sb.WriteString("// Every field is optional; omitted fields use the built-in defaults.\n\n")

	fmt.Fprintf(&sb, "name: %q\n", cfg.Name)
	fmt.Fprintf(&sb, "version_file: %q\n", cfg.VersionFile)
	fmt.Fprintf(&sb, "output_dir: %q\n", cfg.OutputDir)

	writeList(&sb, "runtime_files", cfg.RuntimeFiles)
	writeList(&sb, "dist_files", cfg.DistFiles)

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}

func writeList(sb *strings.Builder, field string, items []string) {
	fmt.Fprintf(sb, "\n%s: [\n", field)
	for _, item := range items {
		fmt.Fprintf(sb, "\t%q,\n", item)
	}
	sb.WriteString("]\n")
}
