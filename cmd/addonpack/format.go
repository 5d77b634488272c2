// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"math"
)

// formatFileSize formats a size in bytes as kilobytes rounded to two decimals.
func formatFileSize(size int64) string {
	const KB = 1024

	kb := math.Round(float64(size)/KB*100) / 100
	return fmt.Sprintf("%.2f KB", kb)
}
