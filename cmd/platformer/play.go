package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagWatch      bool
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing the given pack, or the configured default pack.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, starts slow and speeds up
  normal - 3 lives, starts at 30% and speeds up
  hard   - 2 lives, starts at 70% and speeds up
  fixed  - No progression, stays at config's initial level

Examples:
  platformer play
  platformer play tutorial
  platformer play classic --level 3
  platformer play --levels ./mypack.yaml --watch
  platformer play --difficulty hard --config ./my-platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Play a pack file, or a pack from a directory of pack files")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the pack file when it changes (needs --levels)")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
}

// loadGameConfig loads the platformer config and applies the difficulty flag.
func loadGameConfig() (config.PlatformerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.PlatformerConfig{}, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return config.PlatformerConfig{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// resolvePack finds the pack to play from the arguments and flags.
func resolvePack(args []string, defaultID string) (levels.Pack, error) {
	id := defaultID
	if len(args) > 0 {
		id = args[0]
	}

	if flagLevels == "" {
		return registry.Create(id)
	}

	info, err := os.Stat(flagLevels)
	if err != nil {
		return levels.Pack{}, err
	}
	if !info.IsDir() {
		return levels.LoadFile(flagLevels)
	}

	loader := levels.NewLoader(flagLevels)
	if len(args) > 0 {
		return loader.LoadByID(id)
	}
	packs, err := loader.LoadAll()
	if err != nil {
		return levels.Pack{}, err
	}
	if len(packs) == 0 {
		return levels.Pack{}, fmt.Errorf("%w: no packs in %s", levels.ErrPackNotFound, flagLevels)
	}
	return packs[0], nil
}

// terminalConfig builds a runtime config sized to the terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, or returns nil after a warning;
// games still run without storage.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	if flagWatch && flagLevels == "" {
		return fmt.Errorf("--watch needs --levels")
	}
	if flagLevel < 1 {
		return fmt.Errorf("--level must be at least 1, got %d", flagLevel)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	pack, err := resolvePack(args, gameCfg.Level.Pack)
	if err != nil {
		return err
	}
	if flagLevel > pack.Len() {
		return fmt.Errorf("%w: pack %s has %d levels", levels.ErrLevelNotFound, pack.ID, pack.Len())
	}

	var opts tui.GameOptions
	if flagWatch {
		watcher, err := levels.NewWatcher(pack.FilePath)
		if err != nil {
			return err
		}
		defer watcher.Close()
		opts.Watcher = watcher
	}

	game := platformer.New(pack, platformer.Options{
		Config:     gameCfg,
		StartLevel: flagLevel - 1,
	})

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, terminalConfig(), opts)
}
