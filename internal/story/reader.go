package story

import "github.com/zjrosen/storybook/internal/log"

// Reader holds the only mutable navigation state: the page the reader asked
// for and the pages visited before it. Nothing is persisted.
type Reader struct {
	book    *Book
	page    int
	history []int
}

// NewReader opens book at its start page.
func NewReader(book *Book) *Reader {
	return &Reader{book: book, page: book.Start}
}

// NewReaderAt opens book at page with no history. A non-positive page opens
// the start page.
func NewReaderAt(book *Book, page int) *Reader {
	r := NewReader(book)
	if page > 0 {
		r.page = page
	}
	return r
}

// Book returns the book being read.
func (r *Reader) Book() *Book {
	return r.book
}

// Page returns the currently requested page number.
func (r *Reader) Page() int {
	return r.page
}

// Spread resolves the current spread.
func (r *Reader) Spread() Spread {
	return r.book.Spread(r.page)
}

// Choose follows c and returns the new spread.
func (r *Reader) Choose(c Choice) Spread {
	return r.Goto(ResolveChoiceTarget(c))
}

// Goto jumps to page n, recording the current page in history.
func (r *Reader) Goto(n int) Spread {
	log.Debug(log.CatStory, "Turning page", "from", r.page, "to", n)
	r.history = append(r.history, r.page)
	r.page = n
	return r.Spread()
}

// Back returns to the previously requested page. It reports false when
// there is no history.
func (r *Reader) Back() bool {
	if len(r.history) == 0 {
		return false
	}
	r.page = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return true
}

// Restart returns to the start page and clears history.
func (r *Reader) Restart() Spread {
	r.page = r.book.Start
	r.history = nil
	return r.Spread()
}

// Replace swaps in a reloaded book while keeping the current page and history.
func (r *Reader) Replace(book *Book) {
	r.book = book
}
