// Package bootlog renders the scrolling synthetic system log shown while the
// book loads.
package bootlog

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/storybook/internal/loading"
	"github.com/zjrosen/storybook/internal/mode/shared"
	"github.com/zjrosen/storybook/internal/ui/styles"
)

// Title is set into the panel's top edge.
const Title = "SYSTEM LOGS"

// maxLines bounds the history kept for scrolling.
const maxLines = 200

// Line is a logged entry with the wall-clock time it appeared.
type Line struct {
	Entry loading.Entry
	Stamp string
}

// Model is the boot log panel.
type Model struct {
	clock    shared.Clock
	lines    []Line
	viewport viewport.Model
	width    int
	height   int
}

// New creates a panel that already shows the first loading.InitialEntries
// boot lines, so it never starts empty.
func New(clock shared.Clock) Model {
	m := Model{clock: clock, viewport: viewport.New(0, 0)}
	for i := range loading.InitialEntries {
		if e, ok := loading.Boot.Next(i); ok {
			m = m.Append(e)
		}
	}
	return m
}

// Append logs e stamped with the current time and scrolls to it.
func (m Model) Append(e loading.Entry) Model {
	lines := append(slices.Clip(m.lines), Line{Entry: e, Stamp: shared.FormatTimestamp(m.clock.Now())})
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	m.lines = lines
	m.refresh()
	return m
}

// Lines returns the logged lines, oldest first.
func (m Model) Lines() []Line {
	return m.lines
}

// Len returns the number of lines logged.
func (m Model) Len() int {
	return len(m.lines)
}

// SetSize sets the outer size of the panel including its border.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.viewport.Width = max(width-2, 1)
	m.viewport.Height = max(height-2, 1)
	m.refresh()
	return m
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.render(m.viewport.Width))
	m.viewport.GotoBottom()
}

func (m Model) render(width int) string {
	stamp := lipgloss.NewStyle().Foreground(styles.TerminalTextColor)

	rows := make([]string, 0, len(m.lines))
	for _, l := range m.lines {
		text := "[" + l.Stamp + "] " + l.Entry.Text
		if l.Entry.Kind == loading.KindCommand {
			text = "> " + text
		}
		if width > 0 {
			text = wordwrap.String(text, width)
		}

		style := lipgloss.NewStyle().Foreground(styles.LogKindColor(l.Entry.Kind.String()))
		if l.Entry.Kind == loading.KindInfo {
			open := strings.Index(text, "]")
			rows = append(rows, stamp.Render(text[:open+1])+style.Render(text[open+1:]))
			continue
		}
		rows = append(rows, style.Render(text))
	}
	return strings.Join(rows, "\n")
}

// View renders the framed panel.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return styles.TitledBox(m.viewport.View(), Title, m.width, m.height, styles.TerminalColor, styles.TerminalColor)
}
