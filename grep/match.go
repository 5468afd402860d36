package grep

import (
	"strings"

	"github.com/samber/lo"
)

// Lines splits content into lines.
// A trailing newline does not produce an empty last line, and a "\r"
// immediately before a newline is dropped.
func Lines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Search returns the lines of content that contain query, in order
func Search(query, content string) []string {
	return lo.Filter(Lines(content), func(line string, _ int) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive is like Search but lowercases query and each line
// before comparing. Returned lines keep their original case.
func SearchCaseInsensitive(query, content string) []string {
	query = strings.ToLower(query)
	return lo.Filter(Lines(content), func(line string, _ int) bool {
		return strings.Contains(strings.ToLower(line), query)
	})
}
