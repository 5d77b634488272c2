// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the file involved, and fix
// suggestions. Issue holds Markdown guidance for the build failures users hit
// most, rendered for the terminal with glamour.
package issue
