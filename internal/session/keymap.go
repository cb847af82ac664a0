package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the in-game key bindings. Hosts pass their key events as
// names ("up", "w", "ctrl+c", ...) so every frontend shares one set.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns arrows, WASD and vim keys for steering.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.ZoomIn, k.ZoomOut, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ZoomIn, k.ZoomOut, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// Action maps a key name to an action. Unbound keys return ActionNone.
func (k KeyMap) Action(name fmt.Stringer) core.Action {
	switch {
	case key.Matches(name, k.Quit):
		return core.ActionQuit
	case key.Matches(name, k.Up):
		return core.ActionUp
	case key.Matches(name, k.Down):
		return core.ActionDown
	case key.Matches(name, k.Left):
		return core.ActionLeft
	case key.Matches(name, k.Right):
		return core.ActionRight
	case key.Matches(name, k.ZoomIn):
		return core.ActionZoomIn
	case key.Matches(name, k.ZoomOut):
		return core.ActionZoomOut
	case key.Matches(name, k.Restart):
		return core.ActionRestart
	case key.Matches(name, k.Screenshot):
		return core.ActionScreenshot
	}
	return core.ActionNone
}

// HelpLine renders the short help as plain text for the screen buffer.
func (k KeyMap) HelpLine() string {
	bindings := k.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// KeyName adapts a plain key name to the fmt.Stringer that Action takes.
type KeyName string

func (k KeyName) String() string {
	return string(k)
}
