// SPDX-License-Identifier: MPL-2.0

package addon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

// CompressionLevel is the deflate level used for every entry.
const CompressionLevel = flate.BestCompression

// ErrDuplicateEntry is returned when two files share an archive entry name.
var ErrDuplicateEntry = errors.New("duplicate archive entry")

// ArchiveResult describes a finished archive.
type ArchiveResult struct {
	// Path is the archive location on disk.
	Path string
	// Size is the final archive size in bytes.
	Size int64
	// Entries are the entry names in the order they were written.
	Entries []string
}

// Archive streams entries into a new zip file at outputPath, replacing any
// existing file. Every entry is stored flat under its Name and compressed
// with deflate at CompressionLevel. onAdded, when non-nil, is called after
// each entry is written.
//
// On failure the partially written archive is left on disk.
func Archive(ctx context.Context, entries []Entry, outputPath string, onAdded func(Entry)) (*ArchiveResult, error) {
	if err := CheckEntryNames(entries); err != nil {
		return nil, err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive file: %w", err)
	}

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, bestCompressor)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			_ = zw.Close()
			_ = out.Close()
			return nil, fmt.Errorf("archive canceled: %w", err)
		}
		if err := addEntry(zw, e); err != nil {
			_ = zw.Close()
			_ = out.Close()
			return nil, fmt.Errorf("failed to add %s: %w", e.Source, err)
		}
		names = append(names, e.Name)
		if onAdded != nil {
			onAdded(e)
		}
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close archive file: %w", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}

	return &ArchiveResult{
		Path:    outputPath,
		Size:    info.Size(),
		Entries: names,
	}, nil
}

func bestCompressor(w io.Writer) (io.WriteCloser, error) {
	return flate.NewWriter(w, CompressionLevel)
}

// CheckEntryNames returns an error wrapping ErrDuplicateEntry when two
// entries would be stored under the same name.
func CheckEntryNames(entries []Entry) error {
	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		if first, ok := seen[e.Name]; ok {
			return fmt.Errorf("%w: %q from both %s and %s", ErrDuplicateEntry, e.Name, first, e.Source)
		}
		seen[e.Name] = e.Source
	}
	return nil
}

// addEntry copies one file into the archive without buffering it whole.
func addEntry(zw *zip.Writer, e Entry) (err error) {
	src, err := os.Open(e.Source)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("failed to create file header: %w", err)
	}
	header.Name = e.Name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create zip entry: %w", err)
	}

	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("failed to write file data: %w", err)
	}
	return nil
}
