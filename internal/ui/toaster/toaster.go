// Package toaster shows a short notice at the foot of the screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/storybook/internal/ui/overlay"
	"github.com/zjrosen/storybook/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Style determines the marker and border color of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

var looks = map[Style]struct {
	mark  string
	color lipgloss.TerminalColor
}{
	StyleSuccess: {"✓", styles.StatusSuccessColor},
	StyleError:   {"✗", styles.StatusErrorColor},
	StyleInfo:    {"·", styles.StatusInfoColor},
	StyleWarn:    {"!", styles.StatusWarningColor},
}

// ShowMsg asks the app to raise a toast. Modes return it instead of owning a
// toaster.
type ShowMsg struct {
	Message string
	Style   Style
}

// Show returns a command that raises a toast.
func Show(message string, style Style) tea.Cmd {
	return func() tea.Msg { return ShowMsg{Message: message, Style: style} }
}

// DismissMsg signals that the toast should be dismissed. Seq identifies the
// toast it was scheduled for so an old timer cannot hide a newer toast.
type DismissMsg struct{ Seq int }

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	seq     int
}

// New creates a hidden toaster.
func New() Model {
	return Model{}
}

// Show displays message and returns the command that will dismiss it.
func (m Model) Show(message string, style Style) (Model, tea.Cmd) {
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	seq := m.seq
	return m, tea.Tick(DefaultDuration, func(time.Time) tea.Msg { return DismissMsg{Seq: seq} })
}

// Dismiss hides the toast if msg belongs to it.
func (m Model) Dismiss(msg DismissMsg) Model {
	if msg.Seq == m.seq {
		m.visible = false
		m.message = ""
	}
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text on display.
func (m Model) Message() string {
	return m.message
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}
	look := looks[m.style]
	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(look.color).
		Render(look.mark + " " + m.message)
}

// Overlay renders the toast near the bottom of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		MarginY:  1,
	}, m.View(), bg)
}
