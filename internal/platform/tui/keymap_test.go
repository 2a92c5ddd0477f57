package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a runs left", runeKey("a"), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"l runs right", runeKey("l"), core.ActionRight, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"b goes back", runeKey("b"), core.ActionBack, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"p pauses", runeKey("p"), core.ActionPause, false},
		{"r restarts", runeKey("r"), core.ActionRestart, false},
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("d"), &frame) {
		t.Fatal("d should not quit")
	}
	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame) {
		t.Fatal("space should not quit")
	}
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionJump) {
		t.Errorf("frame should hold right and jump, got %v", frame.Actions)
	}

	km.MapKeyToFrame(runeKey("z"), &frame)
	if len(frame.Actions) != 2 {
		t.Errorf("unbound key changed frame: %v", frame.Actions)
	}

	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
