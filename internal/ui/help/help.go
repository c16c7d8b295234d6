// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/storybook/internal/keys"
	"github.com/zjrosen/storybook/internal/ui/overlay"
	"github.com/zjrosen/storybook/internal/ui/styles"
)

// Footer closes every help box.
const Footer = "Press ? or Esc to close"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextDescriptionColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// sections names the groups returned by ReaderKeyMap.FullHelp, in order.
var sections = []string{"Choices", "Navigation", "General"}

// Model holds the help view state.
type Model struct {
	keys   keys.ReaderKeyMap
	title  string
	width  int
	height int
}

// New creates the reader help view.
func New(km keys.ReaderKeyMap, bookTitle string) Model {
	title := "Keybindings"
	if bookTitle != "" {
		title = bookTitle + " · Keybindings"
	}
	return Model{keys: km, title: title}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help box centered on an empty screen.
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	box := m.renderContent()
	if background == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, box, background)
}

func (m Model) renderContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	groups := m.keys.FullHelp()
	cols := make([]string, 0, len(groups))
	for i, group := range groups {
		var col strings.Builder
		col.WriteString(sectionStyle.Render(sections[i]))
		col.WriteString("\n")
		for _, b := range group {
			col.WriteString(renderBinding(b))
		}
		if i < len(groups)-1 {
			cols = append(cols, columnStyle.Render(col.String()))
		} else {
			cols = append(cols, col.String())
		}
	}
	columns := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	boxWidth := max(lipgloss.Width(columns), lipgloss.Width(m.title)+2) + 4
	body := contentStyle.Render(columns + "\n" + footerStyle.Render(Footer))
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render(m.title))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func renderBinding(b key.Binding) string {
	h := b.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n"
}
