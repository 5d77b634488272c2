// SPDX-License-Identifier: MPL-2.0

// Package build runs the addon packaging pipeline: read the version, validate
// the required files, prepare the output directory, and write the archive.
//
// Each step either completes or aborts the whole run; there is no retry and no
// rollback. Presentation is left to a Reporter so the same pipeline serves the
// CLI and tests.
package build
