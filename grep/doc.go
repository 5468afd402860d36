// Package grep implements the search core of minigrep.
//
// The grep package provides:
// - Resolution of positional arguments and the IGNORE_CASE environment into a Config
// - Case-sensitive and case-insensitive line matching
// - Whole-file reading for a single search run
package grep
