// Package vortexview draws spiral layouts as a grid of terminal cells.
package vortexview

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/storybook/internal/vortex"
)

const (
	// cellAspect is how much taller a terminal cell is than it is wide.
	cellAspect = 2.0

	// glitchPerMille is the substitution chance, in thousandths, of a glyph
	// at full intensity.
	glitchPerMille = 90

	// boldSize is the font size from which glyphs are drawn bold.
	boldSize = 16.0

	// faintIntensity is the intensity below which glyphs are drawn faint.
	faintIntensity = 0.45
)

// Layer is one spiral to draw. Later layers draw over earlier ones.
type Layer struct {
	Placements []vortex.Placement

	// Spin is the rotation speed in degrees per second. Negative spins
	// counter-clockwise.
	Spin float64

	// Glitch supplies replacement glyphs. Empty disables the effect.
	Glitch []string
}

// Cell is one rasterized terminal cell. A wide glyph occupies its own cell
// and marks the cell to its right as Cont.
type Cell struct {
	Char      string
	Color     string
	Bold      bool
	Faint     bool
	Cont      bool
	Glitching bool
}

// Empty reports whether nothing is drawn in the cell.
func (c Cell) Empty() bool {
	return c.Char == "" && !c.Cont
}

// Grid is a height x width matrix of cells.
type Grid [][]Cell

// Frame describes the moment being drawn.
type Frame struct {
	Elapsed time.Duration
	Number  int
}

// Rasterize maps every revealed placement of layers onto a width x height
// grid. The spiral is scaled so the outermost placement of any layer still
// fits, keeping the picture stable while glyphs are revealed.
func Rasterize(layers []Layer, width, height int, f Frame) Grid {
	if width <= 0 || height <= 0 {
		return nil
	}

	grid := make(Grid, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
	}

	reach := 0.0
	for _, l := range layers {
		for _, p := range l.Placements {
			reach = math.Max(reach, p.Radius())
		}
	}
	if reach == 0 {
		return grid
	}

	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	scale := math.Min(cx/reach, cy*cellAspect/reach)
	seconds := f.Elapsed.Seconds()

	for _, l := range layers {
		theta := l.Spin * seconds * math.Pi / 180
		sin, cos := math.Sincos(theta)

		for _, p := range l.Placements {
			if seconds < p.Delay {
				continue
			}

			x := p.X*cos - p.Y*sin
			y := p.X*sin + p.Y*cos
			col := int(math.Round(cx + x*scale))
			row := int(math.Round(cy + y*scale/cellAspect))
			if row < 0 || row >= height || col < 0 || col >= width {
				continue
			}

			cell := Cell{
				Char:  p.Char,
				Color: p.Color,
				Bold:  p.FontSize >= boldSize,
				Faint: p.Intensity < faintIntensity,
			}
			if g, ok := glitch(p, l.Glitch, f.Number); ok {
				cell.Char = g
				cell.Glitching = true
			}
			place(grid[row], col, cell)
		}
	}
	return grid
}

// place writes c at col, giving a double-width glyph the following cell
// too. Wide glyphs that would overflow the row are dropped.
func place(row []Cell, col int, c Cell) {
	w := runewidth.StringWidth(c.Char)
	switch {
	case w <= 0:
		return
	case w == 1:
		clearWide(row, col)
		row[col] = c
	default:
		if col+1 >= len(row) {
			return
		}
		clearWide(row, col)
		clearWide(row, col+1)
		row[col] = c
		row[col+1] = Cell{Cont: true}
	}
}

// clearWide removes the other half of a wide glyph overlapping col.
func clearWide(row []Cell, col int) {
	if row[col].Cont && col > 0 {
		row[col-1] = Cell{}
	}
	if col+1 < len(row) && row[col+1].Cont {
		row[col+1] = Cell{}
	}
	row[col] = Cell{}
}

// glitch decides, deterministically for a frame, whether p shows a
// substitute glyph. Brighter glyphs glitch more often.
func glitch(p vortex.Placement, alphabet []string, frame int) (string, bool) {
	if len(alphabet) == 0 {
		return "", false
	}
	h := mix(uint64(frame), uint64(p.Tendril), uint64(p.Index))
	chance := uint64(p.Intensity * glitchPerMille)
	if h%1000 >= chance {
		return "", false
	}
	return alphabet[(h/1000)%uint64(len(alphabet))], true
}

func mix(vals ...uint64) uint64 {
	h := uint64(1469598103934665603)
	for _, v := range vals {
		h ^= v + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
		h *= 1099511628211
	}
	return h
}

// Render turns a grid into styled lines.
func (g Grid) Render() string {
	var b strings.Builder
	for y, row := range g {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			switch {
			case c.Cont:
			case c.Char == "":
				b.WriteByte(' ')
			default:
				b.WriteString(cellStyle(c).Render(c.Char))
			}
		}
	}
	return b.String()
}

// Plain returns the grid's glyphs without styling.
func (g Grid) Plain() string {
	var b strings.Builder
	for y, row := range g {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			switch {
			case c.Cont:
			case c.Char == "":
				b.WriteByte(' ')
			default:
				b.WriteString(c.Char)
			}
		}
	}
	return b.String()
}

// Count returns how many cells hold a glyph.
func (g Grid) Count() int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c.Char != "" {
				n++
			}
		}
	}
	return n
}

func cellStyle(c Cell) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color))
	if c.Bold {
		s = s.Bold(true)
	}
	if c.Faint {
		s = s.Faint(true)
	}
	if c.Glitching {
		s = s.Reverse(true)
	}
	return s
}
