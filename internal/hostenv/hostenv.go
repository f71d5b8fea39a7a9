// Package hostenv decides whether the process runs in a development
// environment. The answer is resolved once, from the first source that
// states it:
//
//  1. an explicit override (Options.Force)
//  2. the MODLOG_DEVELOPMENT process environment variable
//  3. MODLOG_DEVELOPMENT in a .env file
//  4. the development key of the configuration file
//
// Otherwise the process is treated as production.
package hostenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/jiraiyah/modlog/internal/config"
)

const (
	// EnvVar is the variable consulted in the process environment and the
	// .env file.
	EnvVar = "MODLOG_DEVELOPMENT"

	// DefaultEnvFile is the .env file read by Default.
	DefaultEnvFile = ".env"
)

// Source identifies where the development flag came from.
type Source string

// Flag sources, highest priority first.
const (
	SourceOverride Source = "override"
	SourceProcess  Source = "environment"
	SourceEnvFile  Source = "env-file"
	SourceConfig   Source = "config"
	SourceDefault  Source = "default"
)

// Options controls Resolve.
type Options struct {
	// Force, when non-nil, wins over every other source.
	Force *bool

	// EnvFile is an optional .env file. A missing file is ignored.
	EnvFile string

	// Config is the loaded configuration, may be nil.
	Config *config.Config

	// LookupEnv replaces os.LookupEnv, mainly for tests.
	LookupEnv func(key string) (string, bool)
}

// Detector holds a resolved development flag.
type Detector struct {
	development bool
	source      Source
}

// IsDevelopment reports whether the host is a development environment.
func (d Detector) IsDevelopment() bool {
	return d.development
}

// Source reports which input decided the flag.
func (d Detector) Source() Source {
	return d.source
}

// Resolve evaluates the sources in priority order.
func Resolve(opts Options) (Detector, error) {
	if opts.Force != nil {
		return Detector{development: *opts.Force, source: SourceOverride}, nil
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if value, ok := lookup(EnvVar); ok {
		if dev, known := parseFlag(value); known {
			return Detector{development: dev, source: SourceProcess}, nil
		}
	}

	if opts.EnvFile != "" {
		values, err := godotenv.Read(opts.EnvFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Detector{}, fmt.Errorf("failed to parse environment file %s: %w", opts.EnvFile, err)
		default:
			if dev, known := parseFlag(values[EnvVar]); known {
				return Detector{development: dev, source: SourceEnvFile}, nil
			}
		}
	}

	if opts.Config != nil && opts.Config.Development != nil {
		return Detector{development: *opts.Config.Development, source: SourceConfig}, nil
	}

	return Detector{source: SourceDefault}, nil
}

var defaultDetector = sync.OnceValue(func() Detector {
	return resolveLenient(DefaultEnvFile, config.DefaultPath)
})

// resolveLenient resolves like Resolve but drops any input it cannot read,
// so a broken .env file still lets the config file decide.
func resolveLenient(envFile, configPath string) Detector {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		cfg = nil
	}
	d, err := Resolve(Options{EnvFile: envFile, Config: cfg})
	if err == nil {
		return d
	}
	d, err = Resolve(Options{Config: cfg})
	if err != nil {
		return Detector{source: SourceDefault}
	}
	return d
}

// Default returns the process-wide detector built from the environment,
// ./.env and ./modlog.toml. Unreadable inputs count as unset. The result
// is computed on first use and never changes.
func Default() Detector {
	return defaultDetector()
}

// parseFlag interprets value as a boolean. known is false for empty or
// unrecognized values so that lower-priority sources get a say.
func parseFlag(value string) (dev, known bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}
