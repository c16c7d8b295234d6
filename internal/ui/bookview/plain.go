package bookview

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/storybook/internal/story"
)

// PlainText renders a spread without styling, for the spread command and
// the clipboard. Choices are numbered across the spread, left page first,
// matching the digit keys of the reader. width <= 0 disables wrapping.
func PlainText(s story.Spread, width int) string {
	wrap := func(text string) string {
		text = strings.TrimSpace(text)
		if width <= 0 {
			return text
		}
		return wordwrap.String(text, width)
	}

	var b strings.Builder
	n := 0
	for i, slot := range []story.Slot{s.Left, s.Right} {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "── Page %d ──\n", slot.Number)
		if slot.Absent() {
			b.WriteString("(blank)\n")
			continue
		}

		e := slot.Entry
		if e.Heading != "" {
			b.WriteString("\n" + wrap(strings.ToUpper(e.Heading)) + "\n")
		}
		if e.Body != "" {
			b.WriteString("\n" + wrap(e.Body) + "\n")
		}
		if e.Quote != nil {
			b.WriteString("\n" + wrap("“"+strings.TrimSpace(e.Quote.Text)+"”") + "\n")
			if e.Quote.Author != "" {
				b.WriteString("— " + e.Quote.Author + "\n")
			}
		}
		if e.Illustration != nil {
			fmt.Fprintf(&b, "\n[Illustration: %s]\n", e.Illustration.Alt)
		}

		b.WriteString("\n")
		if e.IsEnding() {
			b.WriteString(endingText + "\n")
			continue
		}
		for _, c := range e.Choices {
			n++
			if c.IsTurn() {
				fmt.Fprintf(&b, "%d. Turn to page %d.\n", n, c.Target)
				continue
			}
			fmt.Fprintf(&b, "%d. %s\n   Turn to page %d\n", n, wrap(c.Text), c.Target)
		}
	}
	return b.String()
}
