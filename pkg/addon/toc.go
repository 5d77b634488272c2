// SPDX-License-Identifier: MPL-2.0

package addon

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const (
	// TOCExt is the extension of the game client's addon manifest.
	TOCExt = ".toc"

	tocVersionTag = "## Version:"
)

// TOCVersion returns the "## Version:" value declared in a .toc manifest.
// ok is false when the manifest declares no version.
func TOCVersion(path string) (version string, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if rest, found := strings.CutPrefix(line, tocVersionTag); found {
			return strings.TrimSpace(rest), true, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return "", false, nil
}
