// blocksmash is a terminal block puzzle: place pieces from a three-slot
// tray onto a 10x10 board, clear full rows and columns, and climb levels.
//
// Usage:
//
//	blocksmash play              - Play in the current terminal
//	blocksmash play --resume     - Resume the autosaved game
//	blocksmash scores            - Show the leaderboard
//	blocksmash saves             - List saved game slots
//	blocksmash shapes            - Browse the shape catalog
//	blocksmash serve             - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.blocksmash/blocksmash.db)
//	--config <path>  - Load a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocksmash",
	Short: "Blocksmash - block puzzle in your terminal",
	Long: `Blocksmash is a terminal block puzzle. Place pieces from a tray of
three onto a 10x10 board; full rows and columns clear for points, with
bonuses for single-color lines and large same-color groups. Empty the
board with enough score to reach the next level.

Available commands:
  play     - Play in the current terminal
  scores   - View the leaderboard
  saves    - List saved game slots
  shapes   - Browse the shape catalog and unlock levels
  serve    - Start SSH server for remote play

Examples:
  blocksmash play
  blocksmash play --resume
  blocksmash scores
  blocksmash serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(serveCmd)
}
