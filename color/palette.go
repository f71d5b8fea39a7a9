package color

import (
	fcolor "github.com/fatih/color"
)

// Foreground is a named text color from the 16-entry ANSI palette.
type Foreground uint8

// Background is a named background color from the 16-entry ANSI palette.
type Background uint8

// Foreground palette.
const (
	FgBlack Foreground = iota
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
	FgBrightBlack
	FgBrightRed
	FgBrightGreen
	FgBrightYellow
	FgBrightBlue
	FgBrightMagenta
	FgBrightCyan
	FgBrightWhite
)

// Background palette.
const (
	BgBlack Background = iota
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
	BgBrightBlack
	BgBrightRed
	BgBrightGreen
	BgBrightYellow
	BgBrightBlue
	BgBrightMagenta
	BgBrightCyan
	BgBrightWhite
)

var paletteNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

var foregroundAttrs = [...]fcolor.Attribute{
	fcolor.FgBlack, fcolor.FgRed, fcolor.FgGreen, fcolor.FgYellow,
	fcolor.FgBlue, fcolor.FgMagenta, fcolor.FgCyan, fcolor.FgWhite,
	fcolor.FgHiBlack, fcolor.FgHiRed, fcolor.FgHiGreen, fcolor.FgHiYellow,
	fcolor.FgHiBlue, fcolor.FgHiMagenta, fcolor.FgHiCyan, fcolor.FgHiWhite,
}

var backgroundAttrs = [...]fcolor.Attribute{
	fcolor.BgBlack, fcolor.BgRed, fcolor.BgGreen, fcolor.BgYellow,
	fcolor.BgBlue, fcolor.BgMagenta, fcolor.BgCyan, fcolor.BgWhite,
	fcolor.BgHiBlack, fcolor.BgHiRed, fcolor.BgHiGreen, fcolor.BgHiYellow,
	fcolor.BgHiBlue, fcolor.BgHiMagenta, fcolor.BgHiCyan, fcolor.BgHiWhite,
}

// Code returns the escape sequence for f, or an empty string when f is
// outside the palette.
func (f Foreground) Code() string {
	if int(f) >= len(foregroundAttrs) {
		return ""
	}
	return sgr(int(foregroundAttrs[f]))
}

// String returns the palette name, e.g. "bright-magenta".
func (f Foreground) String() string {
	if int(f) >= len(paletteNames) {
		return "unknown"
	}
	return paletteNames[f]
}

// Code returns the escape sequence for b, or an empty string when b is
// outside the palette.
func (b Background) Code() string {
	if int(b) >= len(backgroundAttrs) {
		return ""
	}
	return sgr(int(backgroundAttrs[b]))
}

// String returns the palette name, e.g. "bright-red".
func (b Background) String() string {
	if int(b) >= len(paletteNames) {
		return "unknown"
	}
	return paletteNames[b]
}
