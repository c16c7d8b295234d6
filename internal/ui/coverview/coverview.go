// Package coverview renders the front cover of a book.
package coverview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/storybook/internal/story"
	"github.com/zjrosen/storybook/internal/ui/styles"
)

const (
	// Badge is the brand strip across the top of the cover.
	Badge = "CHOOSE YOUR OWN ADVENTURE"
	// Hint sits under the cover.
	Hint = "OPEN THE BOOK · space"

	maxCoverWidth = 64
	minCoverWidth = 30

	// frame is the border plus padding on each side of the cover.
	frame = 2
	// minArtHeight is the smallest illustration frame worth drawing,
	// border included.
	minArtHeight = 5
)

var (
	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(styles.CoverBadgeColor)

	subtitleStyle = lipgloss.NewStyle().Foreground(styles.CoverTextColor)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.CoverTitleColor)

	bylineStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(styles.CoverTextColor)

	creditStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(styles.CoverCreditColor)

	coverStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(styles.CoverRedColor).
			Padding(0, 1)

	artStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(styles.CoverGoldColor)
)

// Model is the cover of one book. The illustration is supplied by the caller
// so the cover can animate.
type Model struct {
	book   *story.Book
	art    string
	width  int
	height int
}

// New creates the cover for book.
func New(book *story.Book) Model {
	return Model{book: book}
}

// SetBook swaps the book, used when the story file is reloaded.
func (m Model) SetBook(book *story.Book) Model {
	m.book = book
	return m
}

// SetSize sets the screen area the cover is centered in.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// SetArt sets the illustration drawn inside the gold frame. It is clipped to
// ArtSize.
func (m Model) SetArt(art string) Model {
	m.art = art
	return m
}

// ArtSize returns the interior of the illustration frame. Zero means the
// screen is too short to show one.
func (m Model) ArtSize() (int, int) {
	inner, _, _, artHeight := m.layout()
	if artHeight == 0 {
		return 0, 0
	}
	return inner - 2, artHeight - 2
}

// layout returns the cover's inner width, the rendered text above and below
// the illustration, and the illustration height including its border.
func (m Model) layout() (int, string, string, int) {
	inner := min(maxCoverWidth, max(m.width-4, minCoverWidth)) - 2*frame
	top := m.top(inner)
	credit := m.credit(inner)

	// Cover border, the hint line, the gap above the art and the credit.
	used := 2 + 1 + 1 + lipgloss.Height(top)
	if credit != "" {
		used += lipgloss.Height(credit)
	}
	artHeight := m.height - used
	if artHeight < minArtHeight {
		artHeight = 0
	}
	return inner, top, credit, artHeight
}

func (m Model) top(inner int) string {
	center := func(s lipgloss.Style, text string) string {
		return s.Width(inner).Align(lipgloss.Center).Render(wordwrap.String(text, inner))
	}

	parts := []string{badgeStyle.Width(inner).Align(lipgloss.Center).Render(Badge)}

	if m.book == nil {
		return parts[0]
	}
	if m.book.Subtitle != "" {
		parts = append(parts, "", center(subtitleStyle, m.book.Subtitle))
	}
	parts = append(parts, "", center(titleStyle, strings.ToUpper(m.book.Title)))
	if m.book.Author != "" {
		parts = append(parts, "", center(bylineStyle, "by "+m.book.Author))
	}
	return strings.Join(parts, "\n")
}

func (m Model) credit(inner int) string {
	if m.book == nil || m.book.Credit == "" {
		return ""
	}
	return creditStyle.Width(inner).Align(lipgloss.Center).Render(wordwrap.String(m.book.Credit, inner))
}

// View renders the cover centered on screen with the open hint beneath.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	inner, top, credit, artHeight := m.layout()
	body := []string{top}
	if artHeight > 0 {
		w, h := inner-2, artHeight-2
		art := lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, clip(m.art, w, h))
		body = append(body, "", artStyle.Render(art))
	}
	if credit != "" {
		body = append(body, credit)
	}

	cover := coverStyle.Render(strings.Join(body, "\n"))
	hint := styles.HelpBarStyle.Render(Hint)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, cover, hint))
}

func clip(s string, w, h int) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	return lipgloss.NewStyle().MaxWidth(w).Render(strings.Join(lines, "\n"))
}
