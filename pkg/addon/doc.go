// SPDX-License-Identifier: MPL-2.0

// Package addon packages game addon sources into a distributable zip archive.
//
// An addon is a flat set of files that the game client loads from a single
// folder under Interface/AddOns. The package covers each step of producing
// the release archive:
//   - [ReadVersion]: Read the release version from a metadata file
//   - [Validate]: Check that every required file is present
//   - [EnsureOutputDir]: Create the output directory when absent
//   - [Archive]: Stream files into a flat, maximally compressed zip
//   - [ListEntries]: Read back the entries of a produced archive
//
// All paths in a [Manifest] are relative to a project root; archive entries
// are always stored under their base name so the archive extracts directly
// into the addon folder.
package addon
