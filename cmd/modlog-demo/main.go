// Package main prints one message of every kind the colorizing logger
// supports, so the palette can be checked in a real terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/jiraiyah/modlog/color"
	"github.com/jiraiyah/modlog/internal/bootstrap"
	"github.com/jiraiyah/modlog/internal/config"
	"github.com/jiraiyah/modlog/internal/hostenv"
	"github.com/jiraiyah/modlog/logger"
)

// Error definitions
var (
	ErrInvalidDevFlag = errors.New("invalid -dev value (expected true, false or empty)")
)

var (
	configPath = flag.String("config", config.DefaultPath, "path to config file (ignored when missing)")
	envFile    = flag.String("env-file", hostenv.DefaultEnvFile, "path to environment file (ignored when missing)")
	devFlag    = flag.String("dev", "", "force development mode: true or false (default: detect)")
	colorMode  = flag.String("color", "", "override console color mode: auto, always or never")
	name       = flag.String("name", "modlog", "logger name")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return err
	}
	if *colorMode != "" {
		cfg.Console.Color = config.ColorMode(*colorMode)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	force, err := parseDevFlag(*devFlag)
	if err != nil {
		return err
	}
	env, err := hostenv.Resolve(hostenv.Options{
		Force:   force,
		EnvFile: *envFile,
		Config:  cfg,
	})
	if err != nil {
		return err
	}

	slogger, err := bootstrap.SetupLogger(bootstrap.LoggerConfig{Console: cfg.Console})
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	slogger.Debug("Host environment resolved",
		"development", env.IsDevelopment(),
		"source", env.Source())

	log := logger.NewWithFacility(*name, logger.SlogFacility{Logger: slogger}, env)
	demo(log)
	return nil
}

func demo(log *logger.Logger) {
	log.LogStartupBanner()
	log.Log("development message")
	log.LogColor("always shown, bright cyan", color.FgBrightCyan)
	log.LogColors("always shown, white on blue", color.FgBrightWhite, color.BgBlue)
	log.LogWarning("development warning")
	log.LogError("error, always shown")
	log.LogPlain("plain development message")
	log.LogRGB("24-bit orange", 255, 165, 0)
	log.LogBackRGB("24-bit navy on gold", 0, 0, 128, 255, 215, 0)
}

func parseDevFlag(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	dev, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDevFlag, value)
	}
	return &dev, nil
}
