// Package overlay draws a box on top of an already rendered screen without
// clearing what lies outside the box.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position anchors the foreground within the screen.
type Position int

const (
	Center Position = iota
	Top
	Bottom
)

// Config describes the screen the foreground is placed on.
type Config struct {
	Width    int
	Height   int
	Position Position
	// MarginY keeps Top and Bottom boxes off the screen edge.
	MarginY int
}

// Place splices fg into bg. Styling on both sides of the box survives
// because cuts are made with ANSI-aware truncation.
func Place(cfg Config, fg, bg string) string {
	screen := strings.Split(bg, "\n")
	for len(screen) < cfg.Height {
		screen = append(screen, strings.Repeat(" ", cfg.Width))
	}

	box := strings.Split(fg, "\n")
	x, y := origin(cfg, lipgloss.Width(fg), len(box))

	for i, row := range box {
		line := y + i
		if line >= len(screen) {
			break
		}
		screen[line] = splice(screen[line], row, x)
	}
	return strings.Join(screen, "\n")
}

func splice(under, row string, x int) string {
	left := ansi.Truncate(under, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(row)
	var right string
	if end < ansi.StringWidth(under) {
		right = ansi.TruncateLeft(under, end, "")
	}
	return left + row + right
}

func origin(cfg Config, w, h int) (x, y int) {
	x = (cfg.Width - w) / 2
	switch cfg.Position {
	case Top:
		y = cfg.MarginY
	case Bottom:
		y = cfg.Height - h - cfg.MarginY
	default:
		y = (cfg.Height - h) / 2
	}
	return max(x, 0), max(y, 0)
}
