// Package cli implements the command-line interface for minigrep.
//
// The cli package provides:
// - Positional argument and IGNORE_CASE handling for the root command
// - Printing of matching lines, with optional highlighting
// - A scrollable pager for results on a terminal
package cli
