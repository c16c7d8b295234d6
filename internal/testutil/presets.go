package testutil

// WithAbyssStory adds a small branching story.
//
// Structure:
//
//	2 ──1──> 4 (ending)
//	  └─2──> 6 ──> 2
//	3 ──> 8 (ending)
//
// 2 and 3 share the opening spread.
func (b *Builder) WithAbyssStory() *Builder {
	return b.
		Title("The Abyss").
		Author("R. A. Montgomery").
		Start(2).
		WithPage(2, Heading("The Ledge"), Body("The cable is at its limit."),
			Choice("Explore the ledge", 4), Choice("Dive into the canyon", 6)).
		WithPage(3, Body("Bubbles flow out of a hole."), Turn(8)).
		WithPage(4, Body("You reach the ledge.")).
		WithPage(6, Body("The canyon swallows the light."), Choice("Swim on", 2)).
		WithPage(8, Body("The hole is a cave."))
}

// WithBrokenStory adds a story with one dangling choice (page 2 to 99) and
// one unreachable page (10).
func (b *Builder) WithBrokenStory() *Builder {
	return b.
		Title("The Broken Abyss").
		Start(2).
		WithPage(2, Body("The cable is at its limit."), Choice("Swim into the dark", 99)).
		WithPage(3, Body("Bubbles flow out of a hole.")).
		WithPage(10, Body("Nobody ever gets here."))
}
