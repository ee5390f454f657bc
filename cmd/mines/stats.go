package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show game history statistics",
	Long: `Display how many games were played, won and lost on each
difficulty, with the best and average winning times.

Examples:
  mines stats
  mines stats --db ./history.db`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.store == nil {
		return fmt.Errorf("history database %s is unavailable", a.cfg.DBPath)
	}

	all, err := a.store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Printf("  %-12s  %6s  %5s  %5s  %5s  %6s  %7s  %s\n",
		"Difficulty", "Played", "Won", "Lost", "Win%", "Best", "Average", "Last played")
	fmt.Printf("  %-12s  %6s  %5s  %5s  %5s  %6s  %7s  %s\n",
		"----------", "------", "---", "----", "----", "----", "-------", "-----------")
	for _, st := range all {
		best, avg, last := "-", "-", "-"
		if st.Won > 0 {
			best = fmt.Sprintf("%ds", st.BestSeconds)
			avg = fmt.Sprintf("%.1fs", st.AvgSeconds)
		}
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-12s  %6d  %5d  %5d  %4.0f%%  %6s  %7s  %s\n",
			st.Kind, st.Played, st.Won, st.Lost, st.WinRate()*100, best, avg, last)
	}

	recent, err := a.store.RecentResults(5)
	if err != nil {
		return fmt.Errorf("retrieving recent games: %w", err)
	}
	if len(recent) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent games:")
	for _, r := range recent {
		fmt.Printf("  %s  %-22s  %-4s  %ds\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Label, r.Outcome, r.Seconds)
	}
	return nil
}
