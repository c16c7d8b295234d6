package story

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/storybook/internal/log"
)

// ErrInvalidStory is returned when a story file cannot be turned into a Book.
var ErrInvalidStory = errors.New("invalid story")

// DefaultStart is the first spread when a story does not name one.
const DefaultStart = 2

// Book is a complete story with its cover metadata.
type Book struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	Author   string `yaml:"author,omitempty"`
	Credit   string `yaml:"credit,omitempty"`
	Start    int    `yaml:"start,omitempty"`
	Pages    Pages  `yaml:"pages"`
}

// Parse decodes a YAML story. Page numbers come from the map keys; a page
// that also carries a number must agree with its key.
func Parse(data []byte) (*Book, error) {
	var b Book
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStory, err)
	}

	if b.Start == 0 {
		b.Start = DefaultStart
	}
	if b.Start < 0 {
		return nil, fmt.Errorf("%w: start page must be positive, got %d", ErrInvalidStory, b.Start)
	}
	if b.Pages == nil {
		b.Pages = Pages{}
	}

	for n, page := range b.Pages {
		if n <= 0 {
			return nil, fmt.Errorf("%w: page numbers must be positive, got %d", ErrInvalidStory, n)
		}
		if page.Number != 0 && page.Number != n {
			return nil, fmt.Errorf("%w: page %d declares number %d", ErrInvalidStory, n, page.Number)
		}
		for i, c := range page.Choices {
			if c.Target <= 0 {
				return nil, fmt.Errorf("%w: page %d choice %d has target %d", ErrInvalidStory, n, i, c.Target)
			}
		}
		page.Number = n
		b.Pages[n] = page
	}

	return &b, nil
}

// LoadFile reads and parses the story at path.
func LoadFile(path string) (*Book, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: story path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("reading story: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		log.ErrorErr(log.CatStory, "Failed to parse story", err, "path", path)
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Info(log.CatStory, "Loaded story", "path", path, "title", b.Title, "pages", len(b.Pages))
	return b, nil
}

// Numbers returns the authored page numbers in ascending order.
func (b *Book) Numbers() []int {
	out := make([]int, 0, len(b.Pages))
	for n := range b.Pages {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Spread resolves the spread for page n.
func (b *Book) Spread(n int) Spread {
	return ResolveSpread(n, b.Pages)
}
