// Package logoverlay shows the in-memory debug log on top of the current
// screen.
package logoverlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/storybook/internal/log"
	"github.com/zjrosen/storybook/internal/ui/overlay"
	"github.com/zjrosen/storybook/internal/ui/styles"
)

const (
	viewportMaxHeight = 25
	viewportMinHeight = 5
	boxMaxWidth       = 160
	boxMinWidth       = 40

	// chrome is the rows taken by the title, two dividers, the hint line
	// and the border.
	chrome = 6
)

// CloseMsg is sent when the overlay closes itself.
type CloseMsg struct{}

// filter is a level the overlay can be narrowed to.
type filter struct {
	key   string
	label string
	level log.Level
}

var filters = []filter{
	{"d", "Debug", log.LevelDebug},
	{"i", "Info", log.LevelInfo},
	{"w", "Warn", log.LevelWarn},
	{"e", "Error", log.LevelError},
}

// Model is the log overlay.
type Model struct {
	visible  bool
	minLevel log.Level
	width    int
	height   int
	viewport viewport.Model
}

// New creates a hidden overlay that shows every level.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Update handles keys while the overlay is visible. LogEvents refresh the
// content whether or not a key was pressed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case log.LogEvent:
		atBottom := m.viewport.AtBottom()
		m.refresh()
		if atBottom {
			m.viewport.GotoBottom()
		}

	case tea.KeyMsg:
		k := msg.String()
		for _, f := range filters {
			if k == f.key {
				m.minLevel = f.level
				m.refresh()
				return m, nil
			}
		}

		switch k {
		case "c":
			log.ClearBuffer()
			m.refresh()
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+x", "esc":
			m.visible = false
			return m, func() tea.Msg { return CloseMsg{} }
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

// View renders the overlay box, or nothing when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	width := m.boxWidth()
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(1)
	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", width))

	body := strings.Join([]string{
		title.Render("Logs"),
		divider,
		m.viewport.View(),
		divider,
		m.hints(),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(width).
		Render(body)
}

// Overlay renders the box centered over bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// Visible reports whether the overlay is shown.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle shows or hides the overlay.
func (m *Model) Toggle() {
	if m.visible {
		m.Hide()
		return
	}
	m.Show()
}

// Show makes the overlay visible, scrolled to the newest entry.
func (m *Model) Show() {
	m.visible = true
	m.refresh()
	m.viewport.GotoBottom()
}

// Hide makes the overlay invisible.
func (m *Model) Hide() {
	m.visible = false
}

// SetSize records the screen size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refresh()
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

func (m *Model) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	w := m.boxWidth() - 2
	h := max(min(viewportMaxHeight, m.height-chrome), viewportMinHeight)

	offset := m.viewport.YOffset
	m.viewport = viewport.New(w, h)
	m.viewport.SetContent(m.content(w))
	m.viewport.SetYOffset(offset)
}

func (m Model) content(width int) string {
	var lines []string
	for _, entry := range log.GetRecentLogs(log.DefaultBufferSize) {
		level, known := levelOf(entry)
		if known && level < m.minLevel {
			continue
		}
		if ansi.StringWidth(entry) > width {
			entry = ansi.Truncate(entry, width-3, "...")
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(levelColor(level, known)).Render(entry))
	}

	if len(lines) == 0 {
		return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true).Render("No logs to display")
	}
	return strings.Join(lines, "\n")
}

// levelOf reads the level tag of a formatted entry.
func levelOf(entry string) (log.Level, bool) {
	for _, l := range []log.Level{log.LevelError, log.LevelWarn, log.LevelInfo, log.LevelDebug} {
		if strings.Contains(entry, "["+l.String()+"]") {
			return l, true
		}
	}
	return log.LevelDebug, false
}

func levelColor(l log.Level, known bool) lipgloss.TerminalColor {
	if !known {
		return styles.TextPrimaryColor
	}
	switch l {
	case log.LevelError:
		return styles.StatusErrorColor
	case log.LevelWarn:
		return styles.StatusWarningColor
	case log.LevelInfo:
		return styles.StatusInfoColor
	default:
		return styles.TextMutedColor
	}
}

// hints renders the key legend with the active filter in bold.
func (m Model) hints() string {
	dim := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	parts := []string{dim.Render("[c] Clear")}
	for _, f := range filters {
		style := dim
		if f.level == m.minLevel {
			style = active
		}
		parts = append(parts, style.Render("["+f.key+"] "+f.label))
	}
	return strings.Join(parts, "  ")
}
