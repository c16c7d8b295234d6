// Package glitchbar renders the blocky terminal progress bar of the loading
// screen.
package glitchbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/storybook/internal/loading"
	"github.com/zjrosen/storybook/internal/ui/styles"
)

// Intensity controls how many filled cells flicker per frame.
type Intensity int

const (
	IntensityLow Intensity = iota
	IntensityMedium
	IntensityHigh
)

func (i Intensity) flickers() int {
	switch i {
	case IntensityMedium:
		return 1
	case IntensityHigh:
		return 3
	default:
		return 0
	}
}

const (
	fullCell    = "█"
	emptyCell   = "░"
	flickerCell = "▓"
	markerCell  = "┊"
)

// Model holds the bar's appearance and its current progress.
type Model struct {
	label          string
	showPercentage bool
	intensity      Intensity
	width          int
	progress       float64
	frame          int
}

// New creates a bar with the label drawn above it.
func New(label string) Model {
	return Model{label: label, intensity: IntensityMedium, width: 40}
}

// WithPercentage toggles the percentage drawn in the middle of the bar.
func (m Model) WithPercentage(show bool) Model {
	m.showPercentage = show
	return m
}

// WithIntensity sets the flicker intensity.
func (m Model) WithIntensity(i Intensity) Model {
	m.intensity = i
	return m
}

// SetWidth sets the outer width including the border.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// SetProgress sets the fill percentage and advances the flicker frame.
func (m Model) SetProgress(progress float64) Model {
	m.progress = progress
	m.frame++
	return m
}

// Progress returns the current percentage.
func (m Model) Progress() float64 {
	return m.progress
}

// Complete reports whether the bar is full.
func (m Model) Complete() bool {
	return m.progress >= 100
}

// Cells returns the unstyled inner row of the bar.
func (m Model) Cells() []string {
	inner := max(m.width-2, 1)
	filled := loading.Segments(m.progress, inner)

	cells := make([]string, inner)
	for i := range cells {
		switch {
		case i < filled:
			cells[i] = fullCell
		case i == inner/4 || i == inner*3/4:
			cells[i] = markerCell
		default:
			cells[i] = emptyCell
		}
	}

	if filled > 0 && filled < inner {
		for k := range m.intensity.flickers() {
			cells[(m.frame*7+k*13)%filled] = flickerCell
		}
	}

	if m.showPercentage {
		text := []rune(fmt.Sprintf(" %d%% ", loading.Percent(m.progress)))
		if len(text) <= inner {
			start := (inner - len(text)) / 2
			for i, r := range text {
				cells[start+i] = string(r)
			}
		}
	}
	return cells
}

// View renders the label and the framed bar.
func (m Model) View() string {
	border := lipgloss.NewStyle().Foreground(styles.TerminalColor)
	fill := lipgloss.NewStyle().Foreground(styles.TerminalColor)
	dim := lipgloss.NewStyle().Foreground(styles.TerminalDimColor).Faint(true)
	text := lipgloss.NewStyle().Foreground(styles.TerminalColor).Bold(true)

	cells := m.Cells()
	inner := len(cells)

	var row strings.Builder
	for _, c := range cells {
		switch c {
		case fullCell, flickerCell:
			row.WriteString(fill.Render(c))
		case emptyCell, markerCell:
			row.WriteString(dim.Render(c))
		default:
			row.WriteString(text.Render(c))
		}
	}

	label := text.Render(strings.ToUpper(ansi.Truncate(m.label, inner+2, "")))
	top := border.Render("┌" + strings.Repeat("─", inner) + "┐")
	mid := border.Render("│") + row.String() + border.Render("│")
	bottom := border.Render("└" + strings.Repeat("─", inner) + "┘")

	return lipgloss.JoinVertical(lipgloss.Center, label, top, mid, bottom)
}
