// Package terminal detects whether console output goes to an interactive,
// color-capable terminal and honors the usual user preferences
// (NO_COLOR, CLICOLOR, CLICOLOR_FORCE).
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars are set by common CI systems.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"BUILD_NUMBER",
	"TRAVIS",
	"CIRCLECI",
	"BUILDKITE",
	"TF_BUILD",
}

// colorTerminals lists TERM values, or prefixes followed by '-', known to
// render ANSI colors.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
	"alacritty",
	"kitty",
	"wezterm",
}

// isTerminal is replaced in tests.
var isTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

// interactiveDetector decides whether output reaches a human.
type interactiveDetector struct {
	forceInteractive    bool
	forceNonInteractive bool
	output              *os.File
}

func (d interactiveDetector) IsInteractive() bool {
	// Priority 1: Command line options (highest priority)
	if d.forceInteractive {
		return true
	}
	if d.forceNonInteractive {
		return false
	}

	// Priority 2: CI environment detection
	if isCIEnvironment() {
		return false
	}

	// Priority 3: Terminal detection on the console output
	return isTerminal(int(d.output.Fd()))
}

// isCIEnvironment reports whether any CI marker is set. CI=false, CI=0 and
// CI=no do not count.
func isCIEnvironment() bool {
	for _, name := range ciEnvVars {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if name == "CI" {
			switch strings.ToLower(strings.TrimSpace(value)) {
			case "false", "0", "no":
				continue
			}
		}
		return true
	}
	return false
}

// termSupportsColor inspects COLORTERM and TERM.
func termSupportsColor() bool {
	// 24-bit capable terminals advertise themselves through COLORTERM
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return true
	}

	// Terminals that definitely don't support color
	name := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if name == "" || name == "dumb" {
		return false
	}
	for _, known := range colorTerminals {
		if name == known || strings.HasPrefix(name, known+"-") {
			return true
		}
	}

	// Unknown terminals get no color
	return false
}
