package story

import (
	"fmt"
	"slices"
)

// IssueKind classifies an authoring problem found by Check.
type IssueKind string

const (
	IssueMissingStart IssueKind = "missing-start"
	IssueDangling     IssueKind = "dangling-choice"
	IssueUnreachable  IssueKind = "unreachable-page"
)

// Issue is one authoring problem.
type Issue struct {
	Kind IssueKind
	Page int
	Msg  string
}

func (i Issue) String() string {
	return fmt.Sprintf("page %d: %s: %s", i.Page, i.Kind, i.Msg)
}

// Check lints the book for authoring mistakes. Navigation never depends on
// it: cycles and dead ends are legal and are not reported.
//
// Reading happens a spread at a time, so a page counts as reachable when it
// shares a spread with a page some choice leads to.
func (b *Book) Check() []Issue {
	var issues []Issue

	startSpread := b.Spread(b.Start)
	if startSpread.Left.Absent() && startSpread.Right.Absent() {
		issues = append(issues, Issue{
			Kind: IssueMissingStart,
			Page: b.Start,
			Msg:  "the start spread has no pages",
		})
	}

	for _, n := range b.Numbers() {
		for i, c := range b.Pages[n].Choices {
			target := ResolveChoiceTarget(c)
			if _, ok := b.Pages.Lookup(target); !ok {
				issues = append(issues, Issue{
					Kind: IssueDangling,
					Page: n,
					Msg:  fmt.Sprintf("choice %d turns to page %d, which does not exist", i+1, target),
				})
			}
		}
	}

	reached := b.reachable()
	for _, n := range b.Numbers() {
		if !reached[n] {
			issues = append(issues, Issue{
				Kind: IssueUnreachable,
				Page: n,
				Msg:  "no choice leads to this page's spread",
			})
		}
	}

	return issues
}

// reachable walks spreads breadth-first from the start page.
func (b *Book) reachable() map[int]bool {
	seen := map[int]bool{}
	queue := []int{b.Start}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		spread := b.Spread(n)
		if seen[spread.Left.Number] && seen[spread.Right.Number] {
			continue
		}
		seen[spread.Left.Number] = true
		seen[spread.Right.Number] = true

		for _, c := range spread.Choices() {
			queue = append(queue, ResolveChoiceTarget(c))
		}
	}

	for n := range seen {
		if _, ok := b.Pages[n]; !ok {
			delete(seen, n)
		}
	}
	return seen
}

// Endings returns the authored pages with no outgoing choices.
func (b *Book) Endings() []int {
	var out []int
	for _, n := range b.Numbers() {
		if b.Pages[n].IsEnding() {
			out = append(out, n)
		}
	}
	return slices.Clip(out)
}
