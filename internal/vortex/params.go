// Package vortex generates the character layout of the loading-screen spiral.
//
// Generate is a pure function: identical Params always produce identical
// placements, in any process, on any platform. Character choice uses a fixed
// integer scrambling formula rather than math/rand so that the sequence is
// part of the contract, not an implementation detail of a library.
package vortex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidParameters is returned when Params cannot produce a layout.
var ErrInvalidParameters = errors.New("invalid vortex parameters")

// Taper is the three-tier font size curve along a tendril.
//
//	i < 10:       InnerBase + i*InnerStep
//	10 <= i < 20: MidBase + (i-10)*MidStep
//	i >= 20:      OuterBase + (i-20)^OuterExponent * OuterMultiplier
type Taper struct {
	InnerBase       float64 `json:"inner_base" yaml:"inner_base"`
	InnerStep       float64 `json:"inner_step" yaml:"inner_step"`
	MidBase         float64 `json:"mid_base" yaml:"mid_base"`
	MidStep         float64 `json:"mid_step" yaml:"mid_step"`
	OuterBase       float64 `json:"outer_base" yaml:"outer_base"`
	OuterExponent   float64 `json:"outer_exponent" yaml:"outer_exponent"`
	OuterMultiplier float64 `json:"outer_multiplier" yaml:"outer_multiplier"`
}

// DefaultTaper is the curve of the primary spiral.
func DefaultTaper() Taper {
	return Taper{
		InnerBase: 6, InnerStep: 0.7,
		MidBase: 13, MidStep: 2.8,
		OuterBase: 41, OuterExponent: 1.9, OuterMultiplier: 1.1,
	}
}

// SecondaryTaper is the flatter curve of the counter-rotating spiral.
func SecondaryTaper() Taper {
	return Taper{
		InnerBase: 6, InnerStep: 0.6,
		MidBase: 12, MidStep: 2.2,
		OuterBase: 34, OuterExponent: 1.7, OuterMultiplier: 1.2,
	}
}

// IsZero reports whether t is the zero Taper.
func (t Taper) IsZero() bool {
	return t == Taper{}
}

// validate rejects curves that would shrink glyphs moving outward.
func (t Taper) validate() error {
	if t.InnerStep < 0 || t.MidStep < 0 || t.OuterMultiplier < 0 || t.OuterExponent < 0 {
		return fmt.Errorf("%w: taper steps must be non-negative", ErrInvalidParameters)
	}
	if t.InnerBase <= 0 {
		return fmt.Errorf("%w: taper inner base must be positive", ErrInvalidParameters)
	}
	if t.InnerBase+(innerTierEnd-1)*t.InnerStep > t.MidBase {
		return fmt.Errorf("%w: taper inner tier overruns mid base %v", ErrInvalidParameters, t.MidBase)
	}
	if t.MidBase+(midTierEnd-innerTierEnd-1)*t.MidStep > t.OuterBase {
		return fmt.Errorf("%w: taper mid tier overruns outer base %v", ErrInvalidParameters, t.OuterBase)
	}
	return nil
}

// Params configures one spiral.
type Params struct {
	TendrilCount    int      `json:"tendril_count" yaml:"tendril_count"`
	CharsPerTendril int      `json:"chars_per_tendril" yaml:"chars_per_tendril"`
	Alphabet        []string `json:"alphabet" yaml:"alphabet"`
	Palette         []string `json:"palette" yaml:"palette"`
	Seed            int64    `json:"seed" yaml:"seed"`

	// IndexOffset shifts every character index so two spirals sharing a seed
	// still draw different glyphs.
	IndexOffset int `json:"index_offset" yaml:"index_offset"`

	// Taper defaults to DefaultTaper when zero.
	Taper Taper `json:"taper" yaml:"taper"`
}

// Alphabets and palettes of the two built-in spirals.
const (
	PrimaryAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()"
	SecondaryAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	primaryPalette   = []string{"#00FFFF", "#FF00FF", "#FFFFFF", "#FF50E5", "#7DF9FF", "#FE00FE"}
	secondaryPalette = []string{"#00CCCC", "#CC00CC", "#CCCCCC", "#CC50B5", "#5DF9FF"}
)

// Primary returns the parameters of the main spiral: 12 tendrils of 30 glyphs.
func Primary() Params {
	return Params{
		TendrilCount:    12,
		CharsPerTendril: 30,
		Alphabet:        Glyphs(PrimaryAlphabet),
		Palette:         append([]string(nil), primaryPalette...),
		Taper:           DefaultTaper(),
	}
}

// Secondary returns the parameters of the dimmer counter-rotating spiral.
func Secondary() Params {
	return Params{
		TendrilCount:    8,
		CharsPerTendril: 25,
		Alphabet:        Glyphs(SecondaryAlphabet),
		Palette:         append([]string(nil), secondaryPalette...),
		IndexOffset:     1000,
		Taper:           SecondaryTaper(),
	}
}

// Glyphs splits s into single-rune glyphs.
func Glyphs(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// WithSeed returns a copy of p using seed.
func (p Params) WithSeed(seed int64) Params {
	p.Seed = seed
	return p
}

// Validate reports why p cannot produce a layout, or nil.
func (p Params) Validate() error {
	switch {
	case p.TendrilCount <= 0:
		return fmt.Errorf("%w: tendril count must be positive, got %d", ErrInvalidParameters, p.TendrilCount)
	case p.CharsPerTendril <= 0:
		return fmt.Errorf("%w: chars per tendril must be positive, got %d", ErrInvalidParameters, p.CharsPerTendril)
	case len(p.Alphabet) == 0:
		return fmt.Errorf("%w: alphabet is empty", ErrInvalidParameters)
	case len(p.Palette) == 0:
		return fmt.Errorf("%w: palette is empty", ErrInvalidParameters)
	}
	for i, g := range p.Alphabet {
		if g == "" {
			return fmt.Errorf("%w: alphabet entry %d is empty", ErrInvalidParameters, i)
		}
	}
	return p.taper().validate()
}

func (p Params) taper() Taper {
	if p.Taper.IsZero() {
		return DefaultTaper()
	}
	return p.Taper
}

// Key returns a stable identifier for p, suitable as a cache key.
func (p Params) Key() string {
	t := p.taper()
	return fmt.Sprintf("t=%d;c=%d;s=%d;o=%d;a=%s;p=%s;taper=%v/%v/%v/%v/%v/%v/%v",
		p.TendrilCount, p.CharsPerTendril, p.Seed, p.IndexOffset,
		strings.Join(p.Alphabet, "\x1f"), strings.Join(p.Palette, ","),
		t.InnerBase, t.InnerStep, t.MidBase, t.MidStep, t.OuterBase, t.OuterExponent, t.OuterMultiplier)
}
