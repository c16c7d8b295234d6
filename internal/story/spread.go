// Package story models an authored choose-your-own-adventure book: sparse
// numbered pages, the choices linking them, and the two-page spread shown
// for any requested page.
package story

// Side is the half of the open book a page prints on.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// SideOf returns SideLeft for even page numbers and SideRight for odd ones.
func SideOf(n int) Side {
	if n%2 == 0 {
		return SideLeft
	}
	return SideRight
}

// Choice is an outgoing link from a page. An empty Text renders as a plain
// "Turn to page N." continuation.
type Choice struct {
	Text   string `yaml:"text,omitempty"`
	Target int    `yaml:"target"`
}

// IsTurn reports whether the choice is an unlabeled page turn.
func (c Choice) IsTurn() bool {
	return c.Text == ""
}

// ResolveChoiceTarget returns the page the choice points to.
func ResolveChoiceTarget(c Choice) int {
	return c.Target
}

// Illustration is a captioned picture reference. The terminal cannot show
// the image, so only Alt is rendered.
type Illustration struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// Quote is an emphasized block with an optional attribution.
type Quote struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author,omitempty"`
}

// PageEntry is one authored page.
type PageEntry struct {
	Number       int           `yaml:"number,omitempty"`
	Heading      string        `yaml:"heading,omitempty"`
	Body         string        `yaml:"body,omitempty"` // markdown
	Quote        *Quote        `yaml:"quote,omitempty"`
	Illustration *Illustration `yaml:"illustration,omitempty"`
	Choices      []Choice      `yaml:"choices,omitempty"`
}

// Side returns the side of the book this page prints on.
func (p PageEntry) Side() Side {
	return SideOf(p.Number)
}

// IsEnding reports whether the page has no outgoing choices.
func (p PageEntry) IsEnding() bool {
	return len(p.Choices) == 0
}

// Pages maps page numbers to authored pages. It is intentionally sparse.
type Pages map[int]PageEntry

// Lookup returns the page numbered n, if authored.
func (ps Pages) Lookup(n int) (PageEntry, bool) {
	p, ok := ps[n]
	return p, ok
}

// Slot is one side of a spread: the page number it shows and the entry, or
// a nil Entry when no page with that number was authored.
type Slot struct {
	Number int
	Entry  *PageEntry
}

// Absent reports whether the slot renders as a blank page.
func (s Slot) Absent() bool {
	return s.Entry == nil
}

// Spread is the pair of pages shown together.
type Spread struct {
	Left  Slot
	Right Slot
}

// ResolveSpread returns the spread containing requested. Even pages open on
// the left with requested+1 on the right; odd pages open on the right with
// requested-1 on the left. Requests at or below zero resolve to two absent
// slots. pages is only read; each present slot holds a copy of its entry.
func ResolveSpread(requested int, pages Pages) Spread {
	left, right := requested, requested+1
	if SideOf(requested) == SideRight {
		left, right = requested-1, requested
	}

	if requested <= 0 {
		return Spread{Left: Slot{Number: left}, Right: Slot{Number: right}}
	}

	return Spread{
		Left:  lookupSlot(left, pages),
		Right: lookupSlot(right, pages),
	}
}

func lookupSlot(n int, pages Pages) Slot {
	entry, ok := pages.Lookup(n)
	if !ok {
		return Slot{Number: n}
	}
	entry.Choices = append([]Choice(nil), entry.Choices...)
	if entry.Quote != nil {
		q := *entry.Quote
		entry.Quote = &q
	}
	if entry.Illustration != nil {
		ill := *entry.Illustration
		entry.Illustration = &ill
	}
	return Slot{Number: n, Entry: &entry}
}

// Choices returns the choices of both slots, left page first.
func (s Spread) Choices() []Choice {
	var out []Choice
	for _, slot := range []Slot{s.Left, s.Right} {
		if slot.Entry != nil {
			out = append(out, slot.Entry.Choices...)
		}
	}
	return out
}

// Contains reports whether page n is one of the two slots.
func (s Spread) Contains(n int) bool {
	return s.Left.Number == n || s.Right.Number == n
}
