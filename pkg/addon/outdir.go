// SPDX-License-Identifier: MPL-2.0

package addon

import (
	"errors"
	"fmt"
	"os"
)

// ErrOutputNotDir is returned when the output path exists but is not a directory.
var ErrOutputNotDir = errors.New("output path is not a directory")

// EnsureOutputDir creates dir and any missing parents. It reports whether the
// directory had to be created; calling it on an existing directory is a no-op.
func EnsureOutputDir(dir string) (created bool, err error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s: %w", dir, ErrOutputNotDir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat output directory: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create output directory: %w", err)
	}
	return true, nil
}
