package story

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func samplePages() Pages {
	return Pages{
		2: {Number: 2, Heading: "Bridge", Choices: []Choice{{Text: "Dive", Target: 4}, {Text: "Wait", Target: 5}}},
		3: {Number: 3, Body: "The hull groans.", Choices: []Choice{{Target: 6}}},
		4: {Number: 4, Body: "Deep water."},
		7: {Number: 7, Body: "Sunlight."},
	}
}

func TestSideOf(t *testing.T) {
	require.Equal(t, SideLeft, SideOf(2))
	require.Equal(t, SideRight, SideOf(3))
	require.Equal(t, SideLeft, SideOf(0))
	require.Equal(t, SideRight, SideOf(-1))
	require.Equal(t, "left", SideLeft.String())
	require.Equal(t, "right", SideRight.String())
}

func TestResolveSpread_EvenRequestOpensLeft(t *testing.T) {
	s := ResolveSpread(2, samplePages())

	require.Equal(t, 2, s.Left.Number)
	require.Equal(t, 3, s.Right.Number)
	require.False(t, s.Left.Absent())
	require.False(t, s.Right.Absent())
	require.Equal(t, "Bridge", s.Left.Entry.Heading)
	require.Equal(t, "The hull groans.", s.Right.Entry.Body)
}

func TestResolveSpread_OddRequestOpensRight(t *testing.T) {
	s := ResolveSpread(3, samplePages())

	require.Equal(t, ResolveSpread(2, samplePages()), s)
}

func TestResolveSpread_MissingPartnerIsAbsent(t *testing.T) {
	s := ResolveSpread(4, samplePages())
	require.Equal(t, 4, s.Left.Number)
	require.False(t, s.Left.Absent())
	require.Equal(t, 5, s.Right.Number)
	require.True(t, s.Right.Absent())

	s = ResolveSpread(7, samplePages())
	require.Equal(t, 6, s.Left.Number)
	require.True(t, s.Left.Absent())
	require.Equal(t, "Sunlight.", s.Right.Entry.Body)
}

func TestResolveSpread_BothAbsent(t *testing.T) {
	s := ResolveSpread(100, samplePages())
	require.True(t, s.Left.Absent())
	require.True(t, s.Right.Absent())
	require.Empty(t, s.Choices())
}

func TestResolveSpread_NonPositiveRequest(t *testing.T) {
	pages := Pages{0: {Number: 0, Body: "never shown"}, 1: {Number: 1, Body: "never shown"}}

	s := ResolveSpread(0, pages)
	require.Equal(t, 0, s.Left.Number)
	require.Equal(t, 1, s.Right.Number)
	require.True(t, s.Left.Absent())
	require.True(t, s.Right.Absent())

	s = ResolveSpread(-3, pages)
	require.Equal(t, -4, s.Left.Number)
	require.Equal(t, -3, s.Right.Number)
	require.True(t, s.Left.Absent())
	require.True(t, s.Right.Absent())
}

func TestResolveSpread_DoesNotAliasPages(t *testing.T) {
	pages := samplePages()
	s := ResolveSpread(2, pages)

	s.Left.Entry.Heading = "changed"
	s.Left.Entry.Choices[0].Target = 99

	require.Equal(t, "Bridge", pages[2].Heading)
	require.Equal(t, 4, pages[2].Choices[0].Target)
}

func TestResolveSpread_CopiesQuoteAndIllustration(t *testing.T) {
	pages := samplePages()
	bridge := pages[2]
	bridge.Quote = &Quote{Text: "Hold fast.", Author: "Captain"}
	bridge.Illustration = &Illustration{Src: "bridge.png", Alt: "a"}
	pages[2] = bridge

	s := ResolveSpread(2, pages)
	s.Left.Entry.Quote.Text = "changed"
	s.Left.Entry.Illustration.Alt = "b"

	require.Equal(t, "Hold fast.", pages[2].Quote.Text)
	require.Equal(t, "a", pages[2].Illustration.Alt)
}

func TestSpreadChoices_LeftFirst(t *testing.T) {
	s := ResolveSpread(2, samplePages())
	require.Equal(t, []Choice{
		{Text: "Dive", Target: 4},
		{Text: "Wait", Target: 5},
		{Target: 6},
	}, s.Choices())
	require.True(t, s.Contains(2))
	require.True(t, s.Contains(3))
	require.False(t, s.Contains(4))
}

func TestResolveChoiceTarget(t *testing.T) {
	require.Equal(t, 6, ResolveChoiceTarget(Choice{Target: 6}))
	require.True(t, Choice{Target: 6}.IsTurn())
	require.False(t, Choice{Text: "Go", Target: 6}.IsTurn())
}

func TestPageEntry_SideAndEnding(t *testing.T) {
	p := samplePages()
	require.Equal(t, SideLeft, p[4].Side())
	require.Equal(t, SideRight, p[7].Side())
	require.True(t, p[4].IsEnding())
	require.False(t, p[2].IsEnding())
}

func TestResolveSpread_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numbers := rapid.SliceOfDistinct(rapid.IntRange(1, 40), rapid.ID[int]).Draw(t, "pages")
		pages := Pages{}
		for _, n := range numbers {
			pages[n] = PageEntry{Number: n}
		}
		requested := rapid.IntRange(1, 42).Draw(t, "requested")

		s := ResolveSpread(requested, pages)

		if s.Left.Number%2 != 0 {
			t.Fatalf("left page %d is odd", s.Left.Number)
		}
		if s.Right.Number != s.Left.Number+1 {
			t.Fatalf("right page %d does not follow left %d", s.Right.Number, s.Left.Number)
		}
		if !s.Contains(requested) {
			t.Fatalf("spread %d/%d does not contain %d", s.Left.Number, s.Right.Number, requested)
		}
		for _, slot := range []Slot{s.Left, s.Right} {
			_, authored := pages[slot.Number]
			if slot.Absent() == authored {
				t.Fatalf("slot %d absent=%v but authored=%v", slot.Number, slot.Absent(), authored)
			}
			if !slot.Absent() && slot.Entry.Number != slot.Number {
				t.Fatalf("slot %d holds page %d", slot.Number, slot.Entry.Number)
			}
		}

		// Both pages of a spread resolve to the same spread.
		if other := ResolveSpread(s.Left.Number+s.Right.Number-requested, pages); other.Left.Number != s.Left.Number {
			t.Fatalf("partner resolves to %d/%d", other.Left.Number, other.Right.Number)
		}
	})
}
