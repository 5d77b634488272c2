// SPDX-License-Identifier: MPL-2.0

package addon

import (
	"fmt"

	"github.com/klauspost/compress/zip"
)

// EntryInfo describes one entry of an existing archive.
type EntryInfo struct {
	Name           string
	Size           uint64
	CompressedSize uint64
}

// ListEntries returns the entries of the archive at path in stored order.
func ListEntries(path string) (entries []EntryInfo, err error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	entries = make([]EntryInfo, 0, len(r.File))
	for _, f := range r.File {
		entries = append(entries, EntryInfo{
			Name:           f.Name,
			Size:           f.UncompressedSize64,
			CompressedSize: f.CompressedSize64,
		})
	}
	return entries, nil
}
