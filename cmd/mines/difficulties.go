package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

var difficultiesCmd = &cobra.Command{
	Use:     "difficulties",
	Aliases: []string{"list"},
	Short:   "List the difficulty presets",
	Long:    `Shows the preset boards and the limits of a custom board.`,
	Args:    cobra.NoArgs,
	Run:     runDifficulties,
}

func runDifficulties(cmd *cobra.Command, args []string) {
	fmt.Println("Difficulties:")
	fmt.Println()

	fmt.Printf("  %-12s  %-7s  %s\n", "Name", "Size", "Mines")
	fmt.Printf("  %-12s  %-7s  %s\n", "----", "----", "-----")
	for _, d := range mines.Presets() {
		size := fmt.Sprintf("%dx%d", d.Width(), d.Height())
		fmt.Printf("  %-12s  %-7s  %d\n", d.Kind(), size, d.MineCount())
	}
	fmt.Printf("  %-12s  %-7s  %s\n", mines.KindCustom,
		fmt.Sprintf("%d-%dx%d-%d", mines.MinCustomWidth, mines.MaxCustomWidth, mines.MinCustomHeight, mines.MaxCustomHeight),
		fmt.Sprintf("%d to half the cells", mines.MinCustomMines))

	fmt.Println()
	fmt.Println("Run 'mines play <name>' to play.")
}
