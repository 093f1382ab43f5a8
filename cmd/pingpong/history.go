package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded sessions",
	Long: `Display the most recent play sessions and overall totals.

Examples:
  pingpong history
  pingpong history --limit 50
  pingpong history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded sessions")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSessions(); err != nil {
			return err
		}
		fmt.Println("Session history cleared.")
		return nil
	}

	sessions, err := store.RecentSessions(flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pingpong play' to record the first one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-8s  %-12s  %8s  %9s  %6s  %s\n",
		"Date", "Frontend", "Player", "Frames", "Returns", "Serves", "Duration")
	fmt.Printf("  %-16s  %-8s  %-12s  %8s  %9s  %6s  %s\n",
		"----", "--------", "------", "------", "-------", "------", "--------")

	for _, s := range sessions {
		player := s.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-16s  %-8s  %-12s  %8d  %4d:%-4d  %6d  %s\n",
			s.StartedAt.Format("2006-01-02 15:04"),
			s.Frontend,
			player,
			s.Frames,
			s.LeftReturns, s.RightReturns,
			s.Serves,
			s.Duration().Round(time.Second),
		)
	}

	totals, err := store.Totals()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Total: %d sessions, %d frames, %d returns, %d serves\n",
		totals.Sessions, totals.Frames, totals.Returns, totals.Serves)
	return nil
}
