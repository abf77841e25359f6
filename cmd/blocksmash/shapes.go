package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpetrov/blocksmash/internal/engine"
)

var flagShapesLevel int

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Browse the shape catalog",
	Long: `Shows every shape in the catalog with its footprint and the level at
which it unlocks.

Examples:
  blocksmash shapes
  blocksmash shapes --level 5    # Only shapes available at level 5`,
	Args: cobra.NoArgs,
	Run:  runShapes,
}

func init() {
	shapesCmd.Flags().IntVar(&flagShapesLevel, "level", 0, "Show only shapes unlocked at this level (0 = all)")
}

func runShapes(_ *cobra.Command, _ []string) {
	shapes := engine.AllShapes()
	unlocked := len(shapes)
	if flagShapesLevel > 0 {
		unlocked = len(engine.UnlockedShapes(flagShapesLevel))
		fmt.Printf("Shapes available at level %d: %d of %d\n", flagShapesLevel, unlocked, len(shapes))
	} else {
		fmt.Printf("Shape catalog: %d shapes\n", len(shapes))
	}
	fmt.Println()

	for i, s := range shapes {
		if i >= unlocked {
			break
		}
		fmt.Printf("%-10s  %dx%d, %d cells, unlocks at level %d\n",
			s.Name, s.W, s.H, s.Size(), engine.UnlockLevel(i))
		fmt.Println(footprint(s))
		fmt.Println()
	}
}

// footprint renders a shape as indented rows of # and spaces.
func footprint(s *engine.Shape) string {
	grid := make([][]byte, s.H)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", s.W))
	}
	for _, off := range s.Offsets {
		grid[off.Y][off.X] = '#'
	}

	rows := make([]string, s.H)
	for y, row := range grid {
		rows[y] = "  " + strings.TrimRight(string(row), " ")
	}
	return strings.Join(rows, "\n")
}
