package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpetrov/blocksmash/internal/config"
	"github.com/mpetrov/blocksmash/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 finished-game scores.

Examples:
  blocksmash scores
  blocksmash scores --db ./blocksmash.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved game slots",
	Long:  `Shows all saved game slots with their score, level and save time.`,
	Args:  cobra.NoArgs,
	Run:   runSaves,
}

func openStoreFromFlags() *storage.Store {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(_ *cobra.Command, _ []string) {
	store := openStoreFromFlags()
	defer store.Close()

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blocksmash play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "Rank", "Score", "Level", "Lines", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.Lines, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore()
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func runSaves(_ *cobra.Command, _ []string) {
	store := openStoreFromFlags()
	defer store.Close()

	saves, err := store.ListSaves()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving saves: %v\n", err)
		os.Exit(1)
	}

	if len(saves) == 0 {
		fmt.Println("No saved games.")
		return
	}

	fmt.Printf("  %-12s  %-10s  %-5s  %s\n", "Slot", "Score", "Level", "Saved")
	fmt.Printf("  %-12s  %-10s  %-5s  %s\n", "----", "-----", "-----", "-----")
	for _, s := range saves {
		fmt.Printf("  %-12s  %-10d  %-5d  %s\n",
			s.Slot, s.Score, s.Level, s.UpdatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Resume with 'blocksmash play --resume --slot <slot>'.")
}
