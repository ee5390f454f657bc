// mines is minesweeper for the terminal.
//
// Usage:
//
//	mines                      - Start the menu
//	mines menu                 - Start the menu
//	mines play [difficulty]    - Play a board directly
//	mines scores [difficulty]  - Show high scores
//	mines stats                - Show games played, won and lost
//	mines difficulties         - List the difficulty presets
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.mines/config.yaml)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--scores-dir <path>  - Directory of the high score files
//	--db <path>          - Game history database
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      uint64
	flagScoresDir string
	flagDBPath    string
	flagLogLevel  string
)

func main() {
	// A .env file is optional.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `Mines is the classic minesweeper game for the terminal.

Available commands:
  menu          - Interactive difficulty picker (default)
  play          - Play a board directly
  scores        - View high scores
  stats         - View game history statistics
  difficulties  - List the difficulty presets

Examples:
  mines
  mines play expert
  mines play custom --width 30 --height 20 --mines 120
  mines scores beginner
  mines stats`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScoresDir, "scores-dir", "", "Directory of the high score files")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to game history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(difficultiesCmd)
}
