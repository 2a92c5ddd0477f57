package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <pack>",
	Short: "Show high scores for a pack",
	Long: `Display the top 10 scores and the best time of every level for the
given pack.

Examples:
  platformer scores classic
  platformer scores tutorial`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	packID := args[0]

	pack, err := registry.Create(packID)
	if err != nil {
		return fmt.Errorf("%w (run 'platformer list' to see packs)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(packID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", pack.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first high score!\n", packID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.BestTimes(packID)
	if err != nil {
		return err
	}
	if len(best) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Best Times")
	fmt.Println()
	fmt.Printf("  %-5s  %-20s  %-8s  %s\n", "Level", "Name", "Best", "Wins")
	fmt.Printf("  %-5s  %-20s  %-8s  %s\n", "-----", "----", "----", "----")

	for _, b := range best {
		name := ""
		if lvl, err := pack.Level(b.Level); err == nil {
			name = lvl.Name
		}
		bestText := "-"
		if b.Wins > 0 {
			bestText = fmt.Sprintf("%.2fs", b.Duration.Seconds())
		}
		fmt.Printf("  %-5d  %-20s  %-8s  %d/%d\n", b.Level+1, name, bestText, b.Wins, b.Attempts)
	}

	return nil
}
