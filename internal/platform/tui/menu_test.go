package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/packs"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuListsPacksWithHighScores(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("classic", 230); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewMenuModel(store, testConfig())
	if len(m.items) < 2 {
		t.Fatalf("expected the built-in packs, got %d items", len(m.items))
	}
	if m.items[0].PackID != "classic" || m.items[0].HighScore != 230 {
		t.Errorf("first item = %+v, want classic with high score 230", m.items[0])
	}

	view := m.View()
	if !strings.Contains(view, "Classic") || !strings.Contains(view, "best 230") {
		t.Errorf("view missing classic entry:\n%s", view)
	}
}

func TestMenuNavigationAndSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor should stay at top, got %d", m.cursor)
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("enter should select a pack")
	}
	if sel.PackID != m.items[1].PackID {
		t.Errorf("selected %q, want %q", sel.PackID, m.items[1].PackID)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = menuUpdate(t, NewMenuModel(nil, testConfig()), runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(nil, testConfig()), tea.WindowSizeMsg{Width: 100, Height: 30})
	cfg := m.Config()
	if cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("config = %dx%d, want 100x30", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not trim, got %q", got)
	}
}
