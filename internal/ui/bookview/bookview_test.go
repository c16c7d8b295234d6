package bookview

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/storybook/internal/story"
	"github.com/zjrosen/storybook/internal/ui/markdown"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func samplePages() story.Pages {
	return story.Pages{
		2: {
			Number:  2,
			Heading: "The Ledge",
			Body:    "The cable attaching you to the *Maray* is extended to its limit.",
			Quote:   &story.Quote{Text: "The sea is everything.", Author: "Jules Verne"},
			Choices: []story.Choice{
				{Text: "If you decide to explore the ledge", Target: 6},
				{Text: "If you decide to dive into the canyon", Target: 4},
			},
		},
		3: {
			Number:       3,
			Body:         "A stream of large bubbles flows steadily out of the hole.",
			Illustration: &story.Illustration{Src: "images/hole.jpg", Alt: "A round hole in the canyon wall"},
			Choices:      []story.Choice{{Target: 14}},
		},
		7: {Number: 7, Body: "You never return to the surface."},
	}
}

func render(t *testing.T, m Model) []string {
	t.Helper()
	return strings.Split(ansi.Strip(zone.Scan(m.View())), "\n")
}

func TestView_TwoPageLayout(t *testing.T) {
	m := New(nil).SetSize(120, 30).SetSpread(story.ResolveSpread(2, samplePages()))

	lines := render(t, m)
	require.Len(t, lines, 30)
	for i, line := range lines {
		require.LessOrEqual(t, lipgloss.Width(line), 120, "line %d", i)
	}

	first := lines[1]
	require.Less(t, strings.Index(first, "2"), strings.Index(first, "3"), "page numbers sit in the outer corners")

	view := strings.Join(lines, "\n")
	require.Contains(t, view, "The Ledge")
	require.Contains(t, view, "“The sea is everything.”")
	require.Contains(t, view, "— Jules Verne")
	require.Contains(t, view, "Illustration: A round hole in the canyon wall")
	require.Contains(t, view, "1. If you decide to explore the ledge")
	require.Contains(t, view, "2. If you decide to dive into the canyon")
	require.Contains(t, view, "Turn to page 6")
	require.Contains(t, view, "Turn to page 14.")
}

func TestView_AbsentPageIsBlank(t *testing.T) {
	m := New(nil).SetSize(120, 20).SetSpread(story.ResolveSpread(6, samplePages()))

	view := strings.Join(render(t, m), "\n")
	require.NotContains(t, view, "6", "page 6 was never written")
	require.Contains(t, view, "7")
	require.Contains(t, view, endingText)
}

func TestView_FooterSitsAtPageBottom(t *testing.T) {
	m := New(nil).SetSize(120, 20).SetSpread(story.ResolveSpread(6, samplePages()))
	lines := render(t, m)
	require.Len(t, lines, 20)

	end, body := -1, -1
	for i, line := range lines {
		if strings.Contains(line, endingText) {
			end = i
		}
		if strings.Contains(line, "You never return") {
			body = i
		}
	}
	require.Greater(t, end, body)
	require.GreaterOrEqual(t, end, len(lines)-3, "the ending is pinned under the body")
}

func TestView_BothAbsent(t *testing.T) {
	m := New(nil).SetSize(100, 12).SetSpread(story.ResolveSpread(40, samplePages()))

	for _, line := range render(t, m)[1:11] {
		require.Empty(t, strings.Trim(line, " │"))
	}
}

func TestView_NarrowStacksPages(t *testing.T) {
	m := New(nil).SetSize(40, 40).SetSpread(story.ResolveSpread(3, samplePages()))

	lines := render(t, m)
	for _, line := range lines {
		require.LessOrEqual(t, lipgloss.Width(line), 40)
	}
	view := strings.Join(lines, "\n")
	require.Less(t, strings.Index(view, "The Ledge"), strings.Index(view, "bubbles"))
}

func TestView_MarkdownBody(t *testing.T) {
	m := New(markdown.NewPool(markdown.StyleDark)).SetSize(120, 30).SetSpread(story.ResolveSpread(2, samplePages()))

	view := strings.Join(render(t, m), "\n")
	require.Contains(t, view, "Maray")
	require.NotContains(t, view, "*Maray*")
}

func TestView_ClipsOverlongPages(t *testing.T) {
	pages := samplePages()
	long := pages[2]
	long.Body = strings.Repeat("The water gets darker as you descend. ", 80)
	pages[2] = long

	m := New(nil).SetSize(100, 20).SetSpread(story.ResolveSpread(2, pages))
	lines := render(t, m)
	require.Len(t, lines, 20)

	view := strings.Join(lines, "\n")
	require.Contains(t, view, "…")
	require.Contains(t, view, "2. If you decide to dive", "choices stay visible")
}

func TestFocus(t *testing.T) {
	m := New(nil).SetSpread(story.ResolveSpread(2, samplePages()))

	c, ok := m.Focused()
	require.True(t, ok)
	require.Equal(t, 6, c.Target)

	m = m.FocusNext()
	c, _ = m.Focused()
	require.Equal(t, 4, c.Target)

	m = m.FocusNext().FocusNext()
	require.Equal(t, 0, m.Focus(), "focus wraps past the last choice")

	m = m.FocusPrev()
	require.Equal(t, 2, m.Focus(), "focus wraps before the first choice")

	m = m.SetSpread(story.ResolveSpread(6, samplePages()))
	_, ok = m.Focused()
	require.False(t, ok)
	require.Equal(t, 0, m.FocusNext().Focus())
}

func TestChoiceAt(t *testing.T) {
	m := New(nil).SetSize(120, 30).SetSpread(story.ResolveSpread(2, samplePages()))
	zone.Scan(m.View())

	var z *zone.ZoneInfo
	require.Eventually(t, func() bool {
		z = zone.Get(m.zoneID(1))
		return z != nil && !z.IsZero()
	}, time.Second, 10*time.Millisecond)

	idx, ok := m.ChoiceAt(tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = m.ChoiceAt(tea.MouseMsg{X: 0, Y: 0})
	require.False(t, ok)
}

func TestPlainText(t *testing.T) {
	got := PlainText(story.ResolveSpread(3, samplePages()), 0)

	want := `── Page 2 ──

THE LEDGE

The cable attaching you to the *Maray* is extended to its limit.

“The sea is everything.”
— Jules Verne

1. If you decide to explore the ledge
   Turn to page 6
2. If you decide to dive into the canyon
   Turn to page 4

── Page 3 ──

A stream of large bubbles flows steadily out of the hole.

[Illustration: A round hole in the canyon wall]

3. Turn to page 14.
`
	require.Equal(t, want, got)
}

func TestPlainText_AbsentAndEnding(t *testing.T) {
	got := PlainText(story.ResolveSpread(7, samplePages()), 20)

	require.Equal(t, "── Page 6 ──\n(blank)\n\n── Page 7 ──\n\nYou never return to\nthe surface.\n\nTHE END\n", got)
}
