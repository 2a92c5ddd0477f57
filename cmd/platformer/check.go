package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a pack file",
	Long: `Parse a pack file and print what each level holds: grid size,
players, coins and fireballs. Exits non-zero if the pack is not playable.

Examples:
  platformer check ./mypack.yaml
  platformer check ./classic.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	parsed, err := formats.Parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Printf("%s: %d levels\n", path, len(parsed.Levels))
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-7s  %-7s  %-5s  %s\n", "#", "Name", "Size", "Players", "Coins", "Fireballs")
	fmt.Printf("  %-3s  %-20s  %-7s  %-7s  %-5s  %s\n", "-", "----", "----", "-------", "-----", "---------")

	for i, lvl := range parsed.Levels {
		s := levels.Summarize(lvl.Rows)
		size := fmt.Sprintf("%dx%d", s.Width, s.Height)
		fmt.Printf("  %-3d  %-20s  %-7s  %-7d  %-5d  %d\n", i+1, lvl.Name, size, s.Players, s.Coins, s.Fireballs)
	}
	fmt.Println()

	if _, err := levels.Parse(filepath.Base(path), data); err != nil {
		return fmt.Errorf("not playable: %w", err)
	}
	fmt.Println("OK")
	return nil
}
