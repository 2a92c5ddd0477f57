package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a pack picker menu",
	Long: `Start the platformer in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a pack.
After a run ends, or while paused, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select pack
  Tab          - Scoreboard
  Q            - Quit

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --difficulty easy`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				log.Error("scoreboard failed", "err", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := tui.NewPackGame(menuResult.PackID, gameCfg, 0)
		if err != nil {
			log.Error("could not start pack", "pack", menuResult.PackID, "err", err)
			continue
		}

		// Fresh seed for each run unless one was given
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, runCfg, tui.GameOptions{AllowBack: true}); err != nil {
			log.Error("game failed", "pack", menuResult.PackID, "err", err)
		}
	}
}
