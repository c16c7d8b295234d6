package vortexview

import (
	"context"
	"fmt"
	"time"

	"github.com/zjrosen/storybook/internal/vortex"
)

// Spin speeds of the built-in spirals, in degrees per second.
const (
	PrimarySpin   = 45.0
	SecondarySpin = -30.0
)

// Options selects the spirals drawn by the spinner.
type Options struct {
	Seed      int64
	Secondary bool
	Glitch    bool
}

// Model is the animated spinner. It has no clock of its own; the owning mode
// advances it with Advance on every tick.
type Model struct {
	layers []Layer
	width  int
	height int
	frame  Frame
}

// New builds the spinner from the preset spirals, reading layouts through
// layouts so a repeat visit reuses them.
func New(ctx context.Context, layouts *Layouts, opts Options) (Model, error) {
	var m Model

	if opts.Secondary {
		l, err := layer(ctx, layouts, vortex.Secondary().WithSeed(opts.Seed), SecondarySpin, opts.Glitch)
		if err != nil {
			return Model{}, fmt.Errorf("secondary spiral: %w", err)
		}
		m.layers = append(m.layers, l)
	}

	l, err := layer(ctx, layouts, vortex.Primary().WithSeed(opts.Seed), PrimarySpin, opts.Glitch)
	if err != nil {
		return Model{}, fmt.Errorf("primary spiral: %w", err)
	}
	m.layers = append(m.layers, l)

	return m, nil
}

func layer(ctx context.Context, layouts *Layouts, p vortex.Params, spin float64, glitch bool) (Layer, error) {
	placements, err := layouts.Get(ctx, p)
	if err != nil {
		return Layer{}, err
	}
	l := Layer{Placements: placements, Spin: spin}
	if glitch {
		l.Glitch = p.Alphabet
	}
	return l, nil
}

// SetSize sets the area the spinner fills.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Advance moves the animation to elapsed and counts one frame.
func (m Model) Advance(elapsed time.Duration) Model {
	m.frame.Elapsed = elapsed
	m.frame.Number++
	return m
}

// Layers returns the number of spirals drawn.
func (m Model) Layers() int {
	return len(m.layers)
}

// Grid rasterizes the current frame.
func (m Model) Grid() Grid {
	return Rasterize(m.layers, m.width, m.height, m.frame)
}

// View renders the current frame.
func (m Model) View() string {
	return m.Grid().Render()
}
