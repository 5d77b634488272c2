// SPDX-License-Identifier: MPL-2.0

package addon

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissingFiles is the sentinel error wrapped by MissingFilesError.
var ErrMissingFiles = errors.New("missing required files")

// MissingFilesError lists every required file that was not found.
type MissingFilesError struct {
	Paths []string
}

// Error implements the error interface.
func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("missing required files: %s", strings.Join(e.Paths, ", "))
}

// Unwrap returns ErrMissingFiles for errors.Is() compatibility.
func (e *MissingFilesError) Unwrap() error { return ErrMissingFiles }

// Validate checks that every file of the manifest exists as a regular file.
// It reports all missing files at once, in manifest order, using the paths
// as written in the manifest.
func Validate(m *Manifest) error {
	var missing []string
	for _, f := range m.Files() {
		info, err := os.Stat(m.resolve(f))
		if err != nil || info.IsDir() {
			missing = append(missing, f)
		}
	}

	if len(missing) > 0 {
		return &MissingFilesError{Paths: missing}
	}
	return nil
}
