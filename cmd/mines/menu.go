package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the difficulty picker",
	Long: `Open the interactive menu. Pick a preset or a custom board, play,
and browse the high scores without leaving the program.

Controls:
  Up/Down   - Navigate
  Enter     - Select
  Tab       - High scores
  Q/Ctrl+C  - Quit`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	model := tui.NewAppModel(a.deps(), a.cfg, runtimeConfig())
	if err := tui.Run(model); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
