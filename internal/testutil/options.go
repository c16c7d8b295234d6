package testutil

import "github.com/zjrosen/storybook/internal/story"

// PageOption configures a page during builder setup.
type PageOption func(*story.PageEntry)

// Heading sets the page heading.
func Heading(h string) PageOption {
	return func(p *story.PageEntry) { p.Heading = h }
}

// Body sets the markdown body.
func Body(md string) PageOption {
	return func(p *story.PageEntry) { p.Body = md }
}

// Quote adds a quote block.
func Quote(text, author string) PageOption {
	return func(p *story.PageEntry) { p.Quote = &story.Quote{Text: text, Author: author} }
}

// Illustration adds a captioned picture.
func Illustration(src, alt string) PageOption {
	return func(p *story.PageEntry) { p.Illustration = &story.Illustration{Src: src, Alt: alt} }
}

// Choice appends a labeled choice.
func Choice(text string, target int) PageOption {
	return func(p *story.PageEntry) {
		p.Choices = append(p.Choices, story.Choice{Text: text, Target: target})
	}
}

// Turn appends an unlabeled "Turn to page N" continuation.
func Turn(target int) PageOption {
	return Choice("", target)
}
