package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var (
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the fastest three wins for a difficulty, or for every
difficulty when none is given.

Examples:
  mines scores
  mines scores expert
  mines scores custom --clear
  mines scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the high scores of the difficulty")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scoreboard screen")
}

func runScores(cmd *cobra.Command, args []string) error {
	kinds := mines.Kinds()
	if len(args) > 0 {
		kind, err := mines.ParseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []mines.Kind{kind}
	}
	if flagClear && len(args) == 0 {
		return errors.New("--clear needs a difficulty")
	}

	a, err := newApp(flagInteractive)
	if err != nil {
		return err
	}
	defer a.Close()

	if flagInteractive {
		model := tui.NewAppModelScores(a.deps(), a.cfg, runtimeConfig(), kinds[0])
		if err := tui.Run(model); err != nil {
			return fmt.Errorf("running scoreboard: %w", err)
		}
		return nil
	}

	if flagClear {
		a.ledger.Clear(kinds[0])
		fmt.Printf("Cleared %s high scores.\n", kinds[0])
		return nil
	}

	for i, kind := range kinds {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("High Scores - %s\n", kind)
		fmt.Println()

		entries := a.ledger.Load(kind)
		if len(entries) == 0 {
			fmt.Println("  No scores recorded yet.")
			continue
		}

		fmt.Printf("  %-4s  %-20s  %s\n", "Rank", "Name", "Time")
		fmt.Printf("  %-4s  %-20s  %s\n", "----", "----", "----")
		for j, e := range entries {
			fmt.Printf("  %-4d  %-20s  %ds\n", j+1, e.Name, e.Seconds)
		}
	}

	if len(kinds) == 1 {
		if entries := a.ledger.Load(kinds[0]); len(entries) > 0 {
			fmt.Println()
			fmt.Println(entries[0].String())
		}
	}
	return nil
}
