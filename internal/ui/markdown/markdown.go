// Package markdown renders page bodies through glamour.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Styles accepted by New. An empty style is dark.
const (
	StyleDark  = "dark"
	StyleLight = "light"
)

// pageStyle drops glamour's document margin so text lines up with the
// heading and choices drawn around it.
const pageStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	},
	"paragraph": {
		"margin": 0
	}
}`

// Renderer wraps one glamour renderer for a fixed width and style.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

// New creates a renderer that wraps at width. A named style is used instead
// of glamour's auto style, which queries the terminal and leaks the reply
// into the input stream.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = StyleDark
	}
	if width < 1 {
		width = 1
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(pageStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s markdown renderer: %w", style, err)
	}
	return &Renderer{renderer: r, width: width, style: style}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Style returns the glamour style name.
func (r *Renderer) Style() string {
	return r.style
}

// Render returns md as styled terminal text without surrounding blank lines.
func (r *Renderer) Render(md string) (string, error) {
	out, err := r.renderer.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// Pool keeps one renderer per width so resizing back and forth does not
// rebuild glamour's style tree.
type Pool struct {
	style     string
	renderers map[int]*Renderer
}

// NewPool creates an empty pool for style.
func NewPool(style string) *Pool {
	return &Pool{style: style, renderers: make(map[int]*Renderer)}
}

// Render renders md wrapped at width.
func (p *Pool) Render(md string, width int) (string, error) {
	r, ok := p.renderers[width]
	if !ok {
		var err error
		r, err = New(width, p.style)
		if err != nil {
			return "", err
		}
		p.renderers[width] = r
	}
	return r.Render(md)
}
