package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colortest/internal/config"
	"github.com/vovakirdan/colortest/internal/core"
)

// KeyMap translates terminal keys to device buttons.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Top    key.Binding
	Bottom key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Top: key.NewBinding(
			key.WithKeys(cfg.Top...),
			key.WithHelp(helpKeys(cfg.Top), "TOP: select"),
		),
		Bottom: key.NewBinding(
			key.WithKeys(cfg.Bottom...),
			key.WithHelp(helpKeys(cfg.Bottom), "BTM: move / start"),
		),
		Help: key.NewBinding(
			key.WithKeys(config.HelpKeys...),
			key.WithHelp(config.HelpKeys[0], "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys(config.QuitKeys...),
			key.WithHelp(config.QuitKeys[0], "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bottom, k.Top, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Bottom, k.Top},
		{k.Help, k.Quit},
	}
}

// MapKey translates a key message to a button.
// Returns the button (may be ButtonNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (button core.Button, isQuit bool) {
	// Global quit keys
	if key.Matches(msg, k.Quit) {
		return core.ButtonNone, true
	}

	switch {
	case key.Matches(msg, k.Top):
		return core.ButtonTop, false
	case key.Matches(msg, k.Bottom):
		return core.ButtonBottom, false
	}

	return core.ButtonNone, false
}

// helpKeys renders key names for the help footer.
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}
