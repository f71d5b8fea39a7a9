package terminal

import (
	"os"
	"strings"
)

// Options carries command line and configuration overrides.
type Options struct {
	ForceColor   bool // always emit color
	DisableColor bool // never emit color

	ForceInteractive    bool
	ForceNonInteractive bool

	// Output is the file console logs are written to. Defaults to os.Stderr.
	Output *os.File
}

// Capabilities reports what the console can display.
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
	HasExplicitUserPreference() bool
}

// DefaultCapabilities implements Capabilities from the process environment.
type DefaultCapabilities struct {
	options  Options
	detector interactiveDetector
}

// NewCapabilities creates Capabilities honoring opts.
func NewCapabilities(opts Options) *DefaultCapabilities {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	return &DefaultCapabilities{
		options: opts,
		detector: interactiveDetector{
			forceInteractive:    opts.ForceInteractive,
			forceNonInteractive: opts.ForceNonInteractive,
			output:              opts.Output,
		},
	}
}

// IsInteractive reports whether output goes to a terminal outside CI.
func (c *DefaultCapabilities) IsInteractive() bool {
	return c.detector.IsInteractive()
}

// SupportsColor applies, in order: options, CLICOLOR_FORCE, NO_COLOR,
// then for interactive color terminals only, CLICOLOR.
func (c *DefaultCapabilities) SupportsColor() bool {
	// Priorities 1-3: options, CLICOLOR_FORCE, NO_COLOR
	if explicit, ok := c.explicitPreference(); ok {
		return explicit
	}

	// Without an explicit preference, color needs an interactive color terminal
	if !c.IsInteractive() || !termSupportsColor() {
		return false
	}

	// Priority 4: CLICOLOR environment variable (only applies in interactive mode)
	if value := os.Getenv("CLICOLOR"); value != "" {
		return isTruthy(value)
	}

	// Priority 5: Default behavior when interactive and color-capable
	return true
}

// HasExplicitUserPreference reports whether options or environment fix the
// color decision independently of the terminal.
func (c *DefaultCapabilities) HasExplicitUserPreference() bool {
	_, ok := c.explicitPreference()
	return ok
}

func (c *DefaultCapabilities) explicitPreference() (color, ok bool) {
	// Priority 1: Command line options (highest priority)
	switch {
	case c.options.ForceColor:
		return true, true
	case c.options.DisableColor:
		return false, true
	}
	// Priority 2: CLICOLOR_FORCE=1 overrides terminal detection
	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true, true
	}
	// Priority 3: NO_COLOR environment variable (any value, even empty)
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false, true
	}
	return false, false
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
