package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

// KeyMapper translates Bubble Tea key messages to platform actions and tile taps.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	tileKeys map[string]bool
}

// NewKeyMapper creates a key mapper. tileKeys are the column keys; they are
// matched case-insensitively.
func NewKeyMapper(tileKeys []string) *KeyMapper {
	km := &KeyMapper{tileKeys: make(map[string]bool, len(tileKeys))}
	for _, k := range tileKeys {
		km.tileKeys[strings.ToLower(k)] = true
	}
	return km
}

// MapKey translates a key message to a platform action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "ctrl+s":
		return core.ActionScreenshot, false
	case "w", "up", "k": // vim-style k for up
		return core.ActionUp, false
	case "s", "down", "j": // vim-style j for down
		return core.ActionDown, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	case "tab":
		return core.ActionScoreboard, false
	}
	return core.ActionNone, false
}

// TileKey reports whether msg is one of the column keys and returns it as a
// locator for the engine.
func (km *KeyMapper) TileKey(msg tea.KeyMsg) (tiles.Key, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return "", false
	}
	k := strings.ToLower(string(msg.Runes))
	if !km.tileKeys[k] {
		return "", false
	}
	return tiles.Key(k), true
}

// TapPoint converts a left-button press into a screen locator.
func TapPoint(msg tea.MouseMsg) (tiles.Point, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return tiles.Point{}, false
	}
	return tiles.Point{X: msg.X, Y: msg.Y}, true
}
