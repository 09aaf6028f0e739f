package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/config"
	"github.com/jeanpiere159/Game-Flappy-Bird/internal/core"
)

// loadConfig resolves the game configuration from the global flags.
func loadConfig() (config.FlappyConfig, error) {
	return config.Resolve(flagConfig, flagDifficulty)
}

// runtimeConfig builds the host settings from the global flags.
func runtimeConfig() (core.RuntimeConfig, error) {
	if flagFPS <= 0 || flagFPS > 240 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt, nil
}

// newLogger creates the logger. With quietByDefault, logs are discarded
// unless --log-file is set, so they cannot garble a full-screen terminal UI.
// The returned close function releases the log file.
func newLogger(quietByDefault bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case quietByDefault:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closeFn, nil
}
