package display

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize makes station metadata safe to print on a terminal.
// Escape sequences are stripped, other control characters become spaces.
func Sanitize(s string) string {
	s = strings.Map(replaceControl('\x1b'), s)
	s = ansi.Strip(s)
	s = strings.Map(replaceControl(-1), s)
	return strings.TrimSpace(s)
}

func replaceControl(keep rune) func(rune) rune {
	return func(r rune) rune {
		if r != keep && unicode.IsControl(r) {
			return ' '
		}
		return r
	}
}
