package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestNewPackGame(t *testing.T) {
	game, err := NewPackGame("classic", config.DefaultPlatformerConfig(), 1)
	if err != nil {
		t.Fatalf("NewPackGame: %v", err)
	}
	game.Reset(testConfig())
	if game.LevelIndex() != 1 {
		t.Errorf("level index = %d, want 1", game.LevelIndex())
	}

	if _, err := NewPackGame("nope", config.DefaultPlatformerConfig(), 0); err == nil {
		t.Error("unknown pack should fail")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), config.DefaultPlatformerConfig(), "tester")

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatal("enter should start the selected pack")
	}

	// Pause, then go back to the menu.
	m = sessionUpdate(t, m, runeKey("p"))
	m = sessionUpdate(t, m, TickMsg(time.Now()))
	m = sessionUpdate(t, m, runeKey("b"))

	if m.screen != screenMenu || m.gameModel != nil {
		t.Fatal("b while paused should return to the menu")
	}
	if m.menu.Selected() != nil {
		t.Error("menu should be fresh after returning")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), config.DefaultPlatformerConfig(), "tester")

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatal("tab should open the scoreboard")
	}

	m = sessionUpdate(t, m, runeKey("b"))
	if m.screen != screenMenu {
		t.Error("b should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), config.DefaultPlatformerConfig(), "tester")

	next, cmd := m.Update(runeKey("q"))
	if !next.(SessionModel).quitting {
		t.Error("q should end the session")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("address = %q", cfg.Address)
	}
	if cfg.Game.Level.Lives != config.DefaultPlatformerConfig().Level.Lives {
		t.Error("default game config should match the platformer defaults")
	}
}

func TestResolveHostKeyPathCreatesDir(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory was not created: %v", err)
	}
}

func TestNewSSHServerRejectsBadGameConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.DBPath = filepath.Join(t.TempDir(), "scores.db")
	cfg.Game.Level.Lives = 0

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("expected an error for a config with no lives")
	}
}
