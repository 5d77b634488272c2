// SPDX-License-Identifier: MPL-2.0

package addon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// VersionKey is the metadata field holding the release version.
const VersionKey = "version"

// ErrEmptyVersion is returned when the metadata file has no usable version.
var ErrEmptyVersion = errors.New("metadata file has no version")

// ReadVersion reads the release version from a metadata file such as
// package.json. The format is inferred from the file extension, so YAML and
// TOML metadata files work as well.
func ReadVersion(path string) (string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("failed to read metadata file %s: %w", path, err)
	}

	version := strings.TrimSpace(v.GetString(VersionKey))
	if version == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyVersion)
	}
	return version, nil
}
