// Package ansi provides ANSI escape styling for terminal game text.
package ansi

import (
	"fmt"
	"strings"
)

// ANSI escape code constants for terminal styling.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Italic = "\033[3m"

	// Foreground colors
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
)

// Color256 returns the foreground escape for entry n of the 256-colour palette.
//
// Precondition: n is in [0, 255].
func Color256(n int) string {
	return fmt.Sprintf("\033[38;5;%dm", n)
}

// Styler applies escape codes when enabled and passes text through untouched otherwise.
type Styler struct {
	enabled bool
}

// NewStyler returns a Styler. When enabled is false every method returns plain text.
func NewStyler(enabled bool) Styler {
	return Styler{enabled: enabled}
}

// Enabled reports whether the Styler emits escape codes.
func (s Styler) Enabled() bool { return s.enabled }

// Style wraps text with the concatenated codes and a reset suffix.
//
// Postcondition: Returns text unchanged if the Styler is disabled or no codes are given.
func (s Styler) Style(text string, codes ...string) string {
	if !s.enabled || len(codes) == 0 {
		return text
	}
	return strings.Join(codes, "") + text + Reset
}

// Stylef formats according to format and wraps the result like Style.
func (s Styler) Stylef(codes []string, format string, args ...interface{}) string {
	return s.Style(fmt.Sprintf(format, args...), codes...)
}

// StripANSI removes all ANSI escape sequences from a string.
// This is useful for measuring the printable width of styled text.
//
// Postcondition: Returns text with all \033[...m sequences removed.
func StripANSI(s string) string {
	result := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}
