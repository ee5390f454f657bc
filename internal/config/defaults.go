package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:    "~/.mines",
		Difficulty: "beginner",
		Custom: CustomConfig{
			Width:  20,
			Height: 12,
			Mines:  40,
		},
		LogLevel: "info",
	}
}
