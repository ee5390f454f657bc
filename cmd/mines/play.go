package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var (
	flagWidth  int
	flagHeight int
	flagMines  int
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a board",
	Long: `Start a board of the given difficulty. Without an argument the
difficulty from the config file is used.

Controls:
  Arrows/hjkl/wasd  - Move
  Space/Enter       - Reveal
  F                 - Flag
  C                 - Chord (open the neighbors of a satisfied number)
  N                 - New game
  Esc/B             - Menu
  Q/Ctrl+C          - Quit

Difficulties:
  beginner      - 8x8, 10 mines
  intermediate  - 16x16, 40 mines
  expert        - 32x16, 99 mines
  custom        - --width, --height and --mines (defaults from config)

Examples:
  mines play
  mines play expert
  mines play custom --width 20 --height 12 --mines 40
  mines play beginner --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Custom board width")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Custom board height")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom mine count")
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	d, err := resolveDifficulty(a.cfg, args, cmd.Flags().Changed("width") ||
		cmd.Flags().Changed("height") || cmd.Flags().Changed("mines"))
	if err != nil {
		return err
	}

	model := tui.NewAppModelPlaying(a.deps(), a.cfg, runtimeConfig(), d)
	if err := tui.Run(model); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// resolveDifficulty picks the board from the argument, the size flags and
// the config. Any size flag implies a custom board.
func resolveDifficulty(cfg config.Config, args []string, sized bool) (mines.Difficulty, error) {
	if len(args) == 0 && !sized {
		return cfg.StartDifficulty()
	}

	kind := mines.KindCustom
	if len(args) > 0 {
		var err error
		if kind, err = mines.ParseKind(args[0]); err != nil {
			return mines.Difficulty{}, err
		}
	}
	if d, ok := mines.Preset(kind); ok {
		if sized {
			return mines.Difficulty{}, errors.New("--width, --height and --mines only apply to custom boards")
		}
		return d, nil
	}

	w, h, n := cfg.Custom.Width, cfg.Custom.Height, cfg.Custom.Mines
	if flagWidth != 0 {
		w = flagWidth
	}
	if flagHeight != 0 {
		h = flagHeight
	}
	if flagMines != 0 {
		n = flagMines
	}
	return mines.NewCustom(w, h, n)
}
