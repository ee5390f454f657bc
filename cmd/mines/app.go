package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/ledger"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// app holds everything a command needs once flags are parsed.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	logFile io.Closer
	store   *storage.Store
	ledger  *ledger.Ledger
	history *storage.History
}

// loadConfig reads the config file, then the environment, then flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()

	if flagScoresDir != "" {
		cfg.ScoresDir = flagScoresDir
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	if err := cfg.Resolve(); err != nil {
		return cfg, fmt.Errorf("cannot resolve paths: %w", err)
	}
	return cfg, nil
}

// newApp loads the configuration and opens storage. Interactive commands
// log to a file so the output does not tear the UI; the others log to stderr.
func newApp(interactive bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	a := &app{cfg: cfg}
	var out io.Writer = os.Stderr
	if interactive {
		out = io.Discard
		if err := os.MkdirAll(filepath.Dir(cfg.LogPath()), 0o755); err == nil {
			if f, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				out = f
				a.logFile = f
			}
		}
	}
	a.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "mines",
		Level:           level,
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		a.logger.Warn("could not open history database", "path", cfg.DBPath, "error", err)
		// Continue without history - the game still works
		store = nil
	}
	a.store = store
	a.history = storage.NewHistory(store, a.logger)
	a.ledger = ledger.New(cfg.ScoresDir, a.logger)

	a.logger.Debug("configured", "scores", cfg.ScoresDir, "db", cfg.DBPath)
	return a, nil
}

// Close releases the database and the log file.
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// deps returns the collaborators shared by the UI screens.
func (a *app) deps() tui.Deps {
	return tui.Deps{Ledger: a.ledger, History: a.history, Logger: a.logger}
}

// runtimeConfig returns the terminal size and the --seed flag.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
