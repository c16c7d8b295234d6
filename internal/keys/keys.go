// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// ReaderKeyMap defines the keybindings used while reading the book.
type ReaderKeyMap struct {
	// Choices
	Pick   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding

	// Navigation
	Back  key.Binding
	Start key.Binding
	Yank  key.Binding

	// General
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultReaderKeyMap returns the default reader keybindings.
func DefaultReaderKeyMap() ReaderKeyMap {
	return ReaderKeyMap{
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "pick choice"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "j", "down"),
			key.WithHelp("tab/j", "next choice"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "k", "up"),
			key.WithHelp("k", "previous choice"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "turn to page"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace"),
			key.WithHelp("b", "go back"),
		),
		Start: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "back to start"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy pages"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the help bar under the book.
func (k ReaderKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Select, k.Back, k.Help, k.Quit}
}

// FullHelp returns keybindings for the help overlay.
func (k ReaderKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pick, k.Next, k.Prev, k.Select}, // Choices
		{k.Back, k.Start, k.Yank},          // Navigation
		{k.Help, k.Escape, k.Quit},         // General
	}
}

// Loading holds the loading screen keybindings.
var Loading = struct {
	Skip key.Binding
	Quit key.Binding
}{
	Skip: key.NewBinding(
		key.WithKeys("space", " ", "enter", "esc"),
		key.WithHelp("space", "skip"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Cover holds the book cover keybindings.
var Cover = struct {
	Open key.Binding
	Quit key.Binding
}{
	Open: key.NewBinding(
		key.WithKeys("space", " ", "enter"),
		key.WithHelp("space", "open the book"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// App holds keybindings handled before any mode sees the message.
var App = struct {
	ToggleLogs key.Binding
}{
	ToggleLogs: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "debug logs"),
	),
}

// ChoiceIndex maps a digit key to a zero-based choice index.
func ChoiceIndex(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '1'), true
}
