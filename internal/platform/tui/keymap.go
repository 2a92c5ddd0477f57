package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// gameBindings maps key strings, as reported by tea.KeyMsg.String, to
// game actions. Vim keys mirror the arrows.
var gameBindings = map[string]core.Action{
	"a": core.ActionLeft, "left": core.ActionLeft, "h": core.ActionLeft,
	"d": core.ActionRight, "right": core.ActionRight, "l": core.ActionRight,
	" ": core.ActionJump, "w": core.ActionJump, "up": core.ActionJump, "k": core.ActionJump,
	"enter":  core.ActionConfirm,
	"b":      core.ActionBack,
	"p":      core.ActionPause,
	"esc":    core.ActionPause,
	"r":      core.ActionRestart,
	"q":      core.ActionQuit,
	"ctrl+c": core.ActionQuit,
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

var menuBindings = map[string]MenuAction{
	"w": MenuActionUp, "up": MenuActionUp, "k": MenuActionUp,
	"s": MenuActionDown, "down": MenuActionDown, "j": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"b": MenuActionBack, "esc": MenuActionBack,
	"q": MenuActionQuit, "ctrl+c": MenuActionQuit,
	"tab": MenuActionScoreboard,
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameBindings, menu: menuBindings}
}

// MapKey translates a key message to a game action.
// Returns the action (ActionNone when unbound) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame records the key's action in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
