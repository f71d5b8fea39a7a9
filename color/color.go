// Package color provides the ANSI escape sequences used to colorize console
// log messages: a closed palette of named foreground and background colors,
// 24-bit RGB sequences, and helpers that wrap text and terminate it with a
// single reset sequence.
//
//nolint:revive // package name conflicts with standard library
package color

import (
	"strconv"
	"strings"

	"github.com/acarl005/stripansi"
)

const (
	// csi is the control sequence introducer shared by every SGR sequence.
	csi = "\033["

	// Reset restores the terminal's default foreground and background.
	Reset = "\033[0m"
)

// Color represents a color function that wraps text with ANSI escape
// sequences.
type Color func(text string) string

// NewColor creates a color function that prefixes text with the given
// escape sequences, in order, and terminates it with exactly one Reset.
func NewColor(codes ...string) Color {
	prefix := strings.Join(codes, "")
	return func(text string) string {
		return prefix + text + Reset
	}
}

// Paint wraps text with the given escape sequences followed by Reset.
func Paint(text string, codes ...string) string {
	return NewColor(codes...)(text)
}

// Strip removes every ANSI escape sequence from s.
func Strip(s string) string {
	return stripansi.Strip(s)
}

// sgr renders a single Select Graphic Rendition parameter.
func sgr(param int) string {
	return csi + strconv.Itoa(param) + "m"
}
