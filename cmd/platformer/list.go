package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all level packs",
	Long:  `Shows the level packs built into the platformer.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No packs available.")
		return
	}

	fmt.Println("Available packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")

	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, p.ID, p.Levels, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a pack.")
}
