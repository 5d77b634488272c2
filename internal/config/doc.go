// SPDX-License-Identifier: MPL-2.0

// Package config handles project configuration using Viper with CUE as the file format.
//
// Configuration is read from addonpack.cue in the project root (or a file given
// explicitly). Every field is optional; anything left out falls back to
// DefaultConfig, which packages the br-5secrule addon. The file is validated
// against an embedded CUE schema (config_schema.cue) so typos and wrong types
// are reported with the offending field path.
package config
