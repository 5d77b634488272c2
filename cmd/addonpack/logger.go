// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the diagnostics logger. Debug messages are only shown
// in verbose mode.
func newLogger(w io.Writer, verboseMode bool) *log.Logger {
	level := log.InfoLevel
	if verboseMode {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "addonpack",
		Level:  level,
	})
}
