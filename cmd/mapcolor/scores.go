package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapcolor/internal/registry"
	"github.com/vovakirdan/mapcolor/internal/storage"
)

var (
	flagRecent  bool
	flagLimit   int
	flagMatchID string
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show match history",
	Long: `Display the best (or latest) matches for a board.
Without a board, prints a summary of every board played.

Examples:
  mapcolor scores
  mapcolor scores australia
  mapcolor scores normal --recent --limit 20
  mapcolor scores --match 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  mapcolor scores wheel --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show latest matches instead of best scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to show")
	scoresCmd.Flags().StringVar(&flagMatchID, "match", "", "Show a single match by ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the board's match history")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagMatchID != "":
		err = showMatch(store, flagMatchID)
	case len(args) == 0:
		err = showSummary(store)
	case flagClear:
		if err = store.ClearBoard(args[0]); err == nil {
			fmt.Printf("Cleared match history for %s\n", args[0])
		}
	default:
		err = showBoard(store, args[0])
	}

	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showMatch(store *storage.Store, id string) error {
	m, err := store.MatchByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("no match with id %s", id)
	}

	fmt.Printf("Match    %s\n", m.MatchID)
	fmt.Printf("Board    %s\n", m.BoardID)
	fmt.Printf("Player   %s\n", m.Player)
	fmt.Printf("Score    %d - %d (%s)\n", m.HumanScore, m.ComputerScore, m.Winner)
	fmt.Printf("Moves    %d\n", m.Moves)
	fmt.Printf("Duration %ds\n", m.Duration)
	fmt.Printf("Played   %s\n", m.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func showSummary(store *storage.Store) error {
	all, err := store.GetAllBoardsStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No matches recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %6s  %4s  %4s  %4s  %4s  %s\n", "Board", "Played", "Won", "Lost", "Draw", "Best", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-12s  %6d  %4d  %4d  %4d  %4d  %s\n",
			id, s.Played, s.HumanWins, s.ComputerWins, s.Draws, s.HighScore,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func showBoard(store *storage.Store, boardID string) error {
	title := boardID
	if info, ok := registry.Info(boardID); ok {
		title = info.Title
	}

	var (
		matches []storage.MatchResult
		err     error
	)
	if flagRecent {
		matches, err = store.RecentMatches(boardID, flagLimit)
		fmt.Printf("Recent Matches - %s\n\n", title)
	} else {
		matches, err = store.TopScores(boardID, flagLimit)
		fmt.Printf("Best Matches - %s\n\n", title)
	}
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mapcolor play %s' to set the first score!\n", boardID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Winner", "Moves", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-8s  %-5s  %s\n", "----", "------", "-----", "------", "-----", "----")
	for i, m := range matches {
		score := fmt.Sprintf("%d-%d", m.HumanScore, m.ComputerScore)
		fmt.Printf("  %-4d  %-12s  %-7s  %-8s  %-5d  %s\n",
			i+1, m.Player, score, m.Winner, m.Moves, m.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetBoardStats(boardID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Played %d, won %d, lost %d, drawn %d. Best: %d\n",
		stats.Played, stats.HumanWins, stats.ComputerWins, stats.Draws, stats.HighScore)
	return nil
}
