// Package config provides YAML-based configuration loading for mines:
// data locations, the default difficulty and the custom board form.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Config is the application configuration.
type Config struct {
	DataDir    string       `yaml:"data_dir"`
	ScoresDir  string       `yaml:"scores_dir"` // empty: <data_dir>/scores
	DBPath     string       `yaml:"db_path"`    // empty: <data_dir>/history.db
	Difficulty string       `yaml:"difficulty"`
	Custom     CustomConfig `yaml:"custom"`
	LogLevel   string       `yaml:"log_level"`
}

// CustomConfig holds the initial values of the custom difficulty form.
type CustomConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// Environment variables that override the file.
const (
	EnvDataDir    = "MINES_DATA_DIR"
	EnvScoresDir  = "MINES_SCORES_DIR"
	EnvDBPath     = "MINES_DB_PATH"
	EnvDifficulty = "MINES_DIFFICULTY"
)

// ApplyEnv overrides fields from MINES_* environment variables.
func (c *Config) ApplyEnv() {
	for env, field := range map[string]*string{
		EnvDataDir:    &c.DataDir,
		EnvScoresDir:  &c.ScoresDir,
		EnvDBPath:     &c.DBPath,
		EnvDifficulty: &c.Difficulty,
	} {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*field = v
		}
	}
}

// Resolve fills derived paths and expands ~ in every path.
func (c *Config) Resolve() error {
	if c.DataDir == "" {
		c.DataDir = Default().DataDir
	}

	var err error
	if c.DataDir, err = ExpandPath(c.DataDir); err != nil {
		return err
	}
	if c.ScoresDir == "" {
		c.ScoresDir = filepath.Join(c.DataDir, "scores")
	}
	if c.ScoresDir, err = ExpandPath(c.ScoresDir); err != nil {
		return err
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, "history.db")
	}
	if c.DBPath, err = ExpandPath(c.DBPath); err != nil {
		return err
	}
	return nil
}

// LogPath is where the interactive UI writes its log.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "mines.log")
}

// Kind returns the configured default difficulty kind.
func (c *Config) Kind() (mines.Kind, error) {
	if c.Difficulty == "" {
		return mines.KindBeginner, nil
	}
	return mines.ParseKind(c.Difficulty)
}

// StartDifficulty returns the difficulty `play` uses without arguments.
// For the custom kind the values of the custom section are validated.
func (c *Config) StartDifficulty() (mines.Difficulty, error) {
	kind, err := c.Kind()
	if err != nil {
		return mines.Difficulty{}, err
	}
	if d, ok := mines.Preset(kind); ok {
		return d, nil
	}
	return mines.NewCustom(c.Custom.Width, c.Custom.Height, c.Custom.Mines)
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
