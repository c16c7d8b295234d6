// Package testutil builds story fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/storybook/internal/story"
)

// Builder accumulates pages and produces a Book or a story file.
type Builder struct {
	t    *testing.T
	book story.Book
}

// NewBuilder creates a builder for an untitled book starting at page 2.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t, book: story.Book{
		Title: "Untitled",
		Start: story.DefaultStart,
		Pages: story.Pages{},
	}}
}

// Title sets the cover title.
func (b *Builder) Title(title string) *Builder {
	b.book.Title = title
	return b
}

// Author sets the byline.
func (b *Builder) Author(author string) *Builder {
	b.book.Author = author
	return b
}

// Start sets the first spread.
func (b *Builder) Start(page int) *Builder {
	b.book.Start = page
	return b
}

// WithPage adds page n with optional configuration. Adding a number twice
// replaces the earlier page.
func (b *Builder) WithPage(n int, opts ...PageOption) *Builder {
	page := story.PageEntry{Number: n}
	for _, opt := range opts {
		opt(&page)
	}
	b.book.Pages[n] = page
	return b
}

// Build returns a copy of the accumulated book.
func (b *Builder) Build() *story.Book {
	b.t.Helper()
	book := b.book
	book.Pages = make(story.Pages, len(b.book.Pages))
	for n, p := range b.book.Pages {
		book.Pages[n] = p
	}
	return &book
}

// YAML encodes the book in the story file format.
func (b *Builder) YAML() []byte {
	b.t.Helper()
	data, err := yaml.Marshal(b.Build())
	require.NoError(b.t, err)
	return data
}

// WriteFile writes the story into a temp dir and returns its path.
func (b *Builder) WriteFile(name string) string {
	b.t.Helper()
	path := filepath.Join(b.t.TempDir(), name)
	require.NoError(b.t, os.WriteFile(path, b.YAML(), 0o600))
	return path
}
