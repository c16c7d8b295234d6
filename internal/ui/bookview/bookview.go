// Package bookview renders a spread as an open book: two pages side by side,
// each with its number in the outer corner and its choices at the foot.
package bookview

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/storybook/internal/log"
	"github.com/zjrosen/storybook/internal/story"
	"github.com/zjrosen/storybook/internal/ui/markdown"
	"github.com/zjrosen/storybook/internal/ui/styles"
)

const (
	maxPageWidth = 64
	minPageWidth = 28
	pagePadding  = 2
	gutterWidth  = 3

	// choiceIndent is the width of the "1. " prefix; wrapped choice text
	// hangs under the first word.
	choiceIndent = 3

	endingText = "THE END"
)

// Model is the open book.
type Model struct {
	spread story.Spread
	focus  int
	width  int
	height int
	md     *markdown.Pool
	zone   string
}

// New creates an empty book that renders page bodies through md.
func New(md *markdown.Pool) Model {
	return Model{md: md, zone: zone.NewPrefix()}
}

// SetSpread shows s with focus on its first choice.
func (m Model) SetSpread(s story.Spread) Model {
	m.spread = s
	m.focus = 0
	return m
}

// Spread returns the spread on display.
func (m Model) Spread() story.Spread {
	return m.spread
}

// SetSize sets the area the book may fill.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Focus returns the index of the focused choice within Spread().Choices().
func (m Model) Focus() int {
	return m.focus
}

// FocusNext moves focus to the next choice, wrapping around.
func (m Model) FocusNext() Model {
	if n := len(m.spread.Choices()); n > 0 {
		m.focus = (m.focus + 1) % n
	}
	return m
}

// FocusPrev moves focus to the previous choice, wrapping around.
func (m Model) FocusPrev() Model {
	if n := len(m.spread.Choices()); n > 0 {
		m.focus = (m.focus - 1 + n) % n
	}
	return m
}

// Focused returns the focused choice, or false when the spread has none.
func (m Model) Focused() (story.Choice, bool) {
	choices := m.spread.Choices()
	if m.focus < 0 || m.focus >= len(choices) {
		return story.Choice{}, false
	}
	return choices[m.focus], true
}

// ChoiceAt returns the index of the choice under a mouse event.
func (m Model) ChoiceAt(msg tea.MouseMsg) (int, bool) {
	for i := range m.spread.Choices() {
		if zone.Get(m.zoneID(i)).InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}

func (m Model) zoneID(i int) string {
	return m.zone + "choice-" + strconv.Itoa(i)
}

// View renders the book. The result carries bubblezone marks; the root view
// must pass through zone.Scan.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.GutterColor)

	leftChoices := 0
	if m.spread.Left.Entry != nil {
		leftChoices = len(m.spread.Left.Entry.Choices)
	}

	pw := min(maxPageWidth, (m.width-2-gutterWidth)/2)
	if pw >= minPageWidth {
		h := max(m.height-2, 1)
		left := m.renderPage(m.spread.Left, story.SideLeft, pw, h, 0)
		right := m.renderPage(m.spread.Right, story.SideRight, pw, h, leftChoices)
		gutter := lipgloss.NewStyle().Foreground(styles.GutterColor).Render(strings.TrimSuffix(strings.Repeat(" │ \n", h), "\n"))
		book := frame.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, gutter, right))
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, book)
	}

	// Too narrow for two pages: stack them.
	pw = max(min(maxPageWidth, m.width-2), 1)
	h := max((m.height-3)/2, 1)
	left := m.renderPage(m.spread.Left, story.SideLeft, pw, h, 0)
	right := m.renderPage(m.spread.Right, story.SideRight, pw, h, leftChoices)
	rule := lipgloss.NewStyle().Foreground(styles.GutterColor).Render(strings.Repeat("─", pw))
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, left, rule, right))
}

// renderPage draws one page exactly width x height. first is the spread-wide
// index of the page's first choice.
func (m Model) renderPage(slot story.Slot, side story.Side, width, height, first int) string {
	inner := max(width-2*pagePadding, 1)
	if slot.Absent() {
		return fit(nil, inner, height, width)
	}
	entry := slot.Entry

	var top []string
	align := lipgloss.Left
	if side == story.SideRight {
		align = lipgloss.Right
	}
	top = append(top, styles.PageNumberStyle.Width(inner).Align(align).Render(strconv.Itoa(slot.Number)), "")

	if entry.Heading != "" {
		heading := styles.HeadingStyle.Width(inner).Align(lipgloss.Center).Render(wordwrap.String(entry.Heading, inner))
		top = append(top, heading, "")
	}
	if entry.Body != "" {
		top = append(top, m.body(entry.Body, inner), "")
	}
	if entry.Quote != nil {
		top = append(top, quote(*entry.Quote, inner), "")
	}
	if entry.Illustration != nil {
		top = append(top, illustration(*entry.Illustration, inner), "")
	}

	bottom := m.choices(entry, inner, first)

	lines := splitAll(top)
	foot := strings.Split(bottom, "\n")
	room := max(height-len(foot), 0)
	if len(lines) > room {
		lines = lines[:room]
		if room > 0 {
			lines[room-1] = styles.TurnToStyle.Render("…")
		}
	}
	for len(lines) < room {
		lines = append(lines, "")
	}
	lines = append(lines, foot...)

	return fit(lines, inner, height, width)
}

func (m Model) body(md string, width int) string {
	if m.md != nil {
		out, err := m.md.Render(md, width)
		if err == nil {
			return out
		}
		log.ErrorErr(log.CatUI, "Rendering page body", err)
	}
	return lipgloss.NewStyle().Foreground(styles.InkColor).Render(wordwrap.String(strings.TrimSpace(md), width))
}

func quote(q story.Quote, width int) string {
	text := styles.QuoteStyle.PaddingLeft(2).Render(wordwrap.String("“"+strings.TrimSpace(q.Text)+"”", max(width-4, 1)))
	if q.Author == "" {
		return text
	}
	author := styles.QuoteAuthorStyle.Width(width).Align(lipgloss.Right).Render("— " + q.Author)
	return text + "\n" + author
}

func illustration(ill story.Illustration, width int) string {
	caption := ill.Alt
	if caption == "" {
		caption = path.Base(ill.Src)
	}
	inner := max(width-4, 1)
	return styles.IllustrationFrameStyle.Width(width - 2).Render(wordwrap.String("Illustration: "+caption, inner))
}

// choices renders the foot of the page: a rule followed by each choice, or
// the ending marker when the page has none.
func (m Model) choices(entry *story.PageEntry, width, first int) string {
	rule := styles.RuleStyle.Render(strings.Repeat("─", width))
	if entry.IsEnding() {
		return rule + "\n" + styles.EndingStyle.Width(width).Align(lipgloss.Center).Render(endingText)
	}

	blocks := []string{rule}
	for j, c := range entry.Choices {
		idx := first + j
		style := styles.ChoiceStyle
		if idx == m.focus {
			style = styles.ChoiceFocusedStyle
		}

		turn := fmt.Sprintf("Turn to page %d", c.Target)
		var block string
		if c.IsTurn() {
			block = style.Width(width).Align(lipgloss.Right).Render(turn + ".")
		} else {
			text := hang(fmt.Sprintf("%d. ", idx+1), c.Text, width)
			block = style.Render(text) + "\n" + styles.TurnToStyle.Width(width).Align(lipgloss.Right).Render(turn)
		}
		blocks = append(blocks, zone.Mark(m.zoneID(idx), block))
	}
	return strings.Join(blocks, "\n")
}

// hang wraps text after prefix with continuation lines indented under it.
func hang(prefix, text string, width int) string {
	lines := strings.Split(wordwrap.String(text, max(width-choiceIndent, 1)), "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = strings.Repeat(" ", choiceIndent) + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func splitAll(parts []string) []string {
	if len(parts) == 0 {
		return nil
	}
	return strings.Split(strings.Join(parts, "\n"), "\n")
}

// fit pads or clips lines to height rows of inner cells and adds the page
// margins.
func fit(lines []string, inner, height, width int) string {
	margin := strings.Repeat(" ", pagePadding)
	rows := make([]string, height)
	for i := range rows {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if ansi.StringWidth(line) > inner {
			line = ansi.Truncate(line, inner, "")
		}
		line += strings.Repeat(" ", inner-ansi.StringWidth(line))
		row := margin + line + margin
		if w := ansi.StringWidth(row); w < width {
			row += strings.Repeat(" ", width-w)
		}
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
