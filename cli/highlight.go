package cli

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// highlight renders every occurrence of query in line with style.
// Lines whose lowercase form has different rune widths are returned as is
// when ignoreCase is set, since offsets would not line up.
func highlight(line, query string, ignoreCase bool, style lipgloss.Style) string {
	if query == "" {
		return line
	}

	haystack, needle := line, query
	if ignoreCase {
		if !sameWidthLower(line) {
			return line
		}
		haystack, needle = strings.ToLower(line), strings.ToLower(query)
	}

	var b strings.Builder
	for {
		i := strings.Index(haystack, needle)
		if i < 0 {
			break
		}
		end := i + len(needle)
		b.WriteString(line[:i])
		b.WriteString(style.Render(line[i:end]))
		line, haystack = line[end:], haystack[end:]
	}
	b.WriteString(line)
	return b.String()
}

func sameWidthLower(s string) bool {
	for _, r := range s {
		if utf8.RuneLen(unicode.ToLower(r)) != utf8.RuneLen(r) {
			return false
		}
	}
	return true
}
