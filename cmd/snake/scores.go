package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresLimit  int
	flagScoresStats  bool
	flagClearPlayer  string
	flagClearYes     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best scores, optionally for a single player.

Examples:
  snake scores
  snake scores --player ann --limit 5
  snake scores --stats
  snake scores clear --player ann --yes`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var clearScoresCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete recorded scores",
	Long: `Delete the scores of one player, or every score when --player is not given.

Examples:
  snake scores clear --player ann --yes
  snake scores clear --yes`,
	Args: cobra.NoArgs,
	Run:  runClearScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show this player's scores")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-player statistics instead")

	clearScoresCmd.Flags().StringVar(&flagClearPlayer, "player", "", "Only delete this player's scores")
	clearScoresCmd.Flags().BoolVar(&flagClearYes, "yes", false, "Confirm deletion")
	scoresCmd.AddCommand(clearScoresCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if flagScoresStats {
		printStats(store)
		return
	}

	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	if flagScoresPlayer != "" {
		fmt.Printf("High Scores - %s\n", flagScoresPlayer)
	} else {
		fmt.Println("High Scores")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-12s  %s\n", "Rank", "Player", "Score", "Length", "Ended", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-12s  %s\n", "----", "------", "-----", "------", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-6d  %-6d  %-12s  %s\n",
			i+1, entry.Player, entry.Score, entry.Length, entry.Reason, dateStr)
	}

	// Show high score
	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printStats(store *storage.Store) {
	all, err := store.GetAllPlayersStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		store.Close()
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	players := make([]string, 0, len(all))
	for name := range all {
		players = append(players, name)
	}
	sort.Strings(players)

	fmt.Printf("  %-12s  %-5s  %-6s  %-7s  %-7s  %s\n", "Player", "Games", "Best", "Avg", "Longest", "Last Played")
	fmt.Printf("  %-12s  %-5s  %-6s  %-7s  %-7s  %s\n", "------", "-----", "----", "---", "-------", "-----------")
	for _, name := range players {
		st := all[name]
		fmt.Printf("  %-12s  %-5d  %-6d  %-7.1f  %-7d  %s\n",
			st.Player, st.GamesCount, st.HighScore, st.AvgScore, st.MaxLength,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func runClearScores(_ *cobra.Command, _ []string) {
	if !flagClearYes {
		fmt.Fprintln(os.Stderr, "Refusing to delete scores without --yes")
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	if err := store.ClearScores(flagClearPlayer); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
	if flagClearPlayer != "" {
		fmt.Printf("Cleared scores for %s\n", flagClearPlayer)
	} else {
		fmt.Println("Cleared all scores")
	}
}
