package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	boxTopLeft     = "┌"
	boxTopRight    = "┐"
	boxBottomLeft  = "└"
	boxBottomRight = "┘"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// TitledBox frames content in a square border with the title set into the
// top edge: ┌─[ TITLE ]────┐. Content is clipped to the box; the result is
// exactly width columns by height rows.
func TitledBox(content, title string, width, height int, borderColor, titleColor lipgloss.TerminalColor) string {
	border := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(true)

	inner := max(width-2, 1)
	rows := max(height-2, 1)

	lines := strings.Split(content, "\n")
	body := make([]string, rows)
	for i := range rows {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], inner, "")
		}
		if w := ansi.StringWidth(line); w < inner {
			line += strings.Repeat(" ", inner-w)
		}
		body[i] = border.Render(boxVertical) + line + border.Render(boxVertical)
	}

	var b strings.Builder
	b.WriteString(topEdge(title, inner, border, titleStyle))
	b.WriteString("\n")
	b.WriteString(strings.Join(body, "\n"))
	b.WriteString("\n")
	b.WriteString(border.Render(boxBottomLeft + strings.Repeat(boxHorizontal, inner) + boxBottomRight))
	return b.String()
}

// topEdge needs room for "─[ " and " ]─" around the title; narrower boxes get
// a plain edge.
func topEdge(title string, inner int, border, titleStyle lipgloss.Style) string {
	plain := border.Render(boxTopLeft + strings.Repeat(boxHorizontal, inner) + boxTopRight)
	if title == "" || inner < 7 {
		return plain
	}

	title = Truncate(title, inner-6)
	rest := max(inner-6-ansi.StringWidth(title), 0)

	return border.Render(boxTopLeft+boxHorizontal+"[ ") +
		titleStyle.Render(title) +
		border.Render(" ]"+strings.Repeat(boxHorizontal, rest)+boxHorizontal+boxTopRight)
}

// Truncate shortens s to maxWidth cells, marking the cut with an ellipsis.
func Truncate(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	return ansi.Truncate(s, maxWidth, "...")
}
