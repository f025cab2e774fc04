package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "space", "w", "up":
		return core.ActionJump, false
	case "f", "j":
		return core.ActionAttack, false
	case "p", "enter":
		return core.ActionPause, false
	case "b", "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapMouse translates a mouse message to an action.
// Only a left button press means something: it swings the sword.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionAttack
	}
	return core.ActionNone
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
	MenuActionRename
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "n":
		return MenuActionRename
	}

	return MenuActionNone
}

// HoldTracker emulates held movement keys.
//
// Terminals report key presses but never releases. A press keeps its
// direction held for a fixed number of ticks; keyboard auto-repeat
// refreshes it while the key is really down.
type HoldTracker struct {
	holdTicks int
	remaining map[core.Action]int
}

// NewHoldTracker creates a tracker holding each press for holdTicks ticks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks <= 0 {
		holdTicks = core.DefaultConfig().HoldTicks
	}
	return &HoldTracker{
		holdTicks: holdTicks,
		remaining: make(map[core.Action]int),
	}
}

// Press starts or refreshes a hold. Pressing one direction releases the
// opposite one. Non-movement actions are ignored.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	default:
		return
	}
	h.remaining[a] = h.holdTicks
}

// Held reports whether the action is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	return h.remaining[a] > 0
}

// Apply marks every held action on the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		if n > 0 {
			frame.Hold(a)
		}
	}
}

// Tick ages every hold by one tick and forgets expired ones.
func (h *HoldTracker) Tick() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// Release drops every hold.
func (h *HoldTracker) Release() {
	clear(h.remaining)
}
