// platformer is a tile-based platformer for the terminal.
//
// Usage:
//
//	platformer list              - List level packs
//	platformer play [pack]       - Play a pack
//	platformer menu              - Pick packs from a menu
//	platformer serve             - Start SSH server for remote play
//	platformer scores <pack>     - Show high scores and best level times
//	platformer check <file>      - Validate a pack file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.platformer/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the built-in packs
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/packs"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Run, jump and collect coins in your terminal",
	Long: `platformer is a tile-based platformer played in the terminal.
Collect every coin of a level to clear it; lava and fireballs cost a life.

Available commands:
  list     - Show the level packs
  play     - Play a pack directly
  menu     - Interactive pack picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and best level times
  check    - Validate a pack file

Examples:
  platformer list
  platformer play classic
  platformer play --levels ./mypack.yaml --watch
  platformer menu
  platformer serve --ssh :2222
  platformer scores classic`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}
