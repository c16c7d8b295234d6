package vortex

import (
	"math"
	"slices"
)

const (
	angleStep        = 5.0 // degrees between consecutive glyphs on a tendril
	baseRadius       = 5.0
	growthExponent   = 1.65
	growthMultiplier = 3.7

	innerTierEnd = 10
	midTierEnd   = 20

	baseDelay       = 0.2
	perCharDelay    = 0.05
	perTendrilDelay = 0.08
	baseIntensity   = 0.3

	// Offsets are rounded to this many decimal places.
	coordScale = 1e6

	repeatWindow = 3
	maxAttempts  = 5
)

// Character scrambling constants. The modulus also bounds every
// intermediate product so the hash never overflows int64.
const (
	hashModulus    = 233333
	hashIndexMul   = 1237
	hashSeedMul    = 374761
	charSeedMul    = 42
	charSeedMod    = 13
	charSeedModMul = 7
)

// Placement is one positioned glyph of the spiral.
type Placement struct {
	Tendril   int     `json:"tendril" yaml:"tendril"`
	Index     int     `json:"index" yaml:"index"`
	Char      string  `json:"char" yaml:"char"`
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
	FontSize  float64 `json:"font_size" yaml:"font_size"`
	Angle     float64 `json:"angle" yaml:"angle"`
	Delay     float64 `json:"delay" yaml:"delay"`
	Color     string  `json:"color" yaml:"color"`
	Intensity float64 `json:"intensity" yaml:"intensity"`
}

// Radius returns the distance of the placement from the spiral center.
func (p Placement) Radius() float64 {
	return math.Hypot(p.X, p.Y)
}

// Generate lays out p.TendrilCount*p.CharsPerTendril glyphs, tendril-major.
// It returns ErrInvalidParameters (wrapped) and no placements when p is invalid.
func Generate(p Params) ([]Placement, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	taper := p.taper()
	out := make([]Placement, 0, p.TendrilCount*p.CharsPerTendril)
	recent := make([]string, 0, repeatWindow)

	for t := range p.TendrilCount {
		startAngle := float64(t) * 360 / float64(p.TendrilCount)
		color := p.Palette[t%len(p.Palette)]
		recent = recent[:0]

		for i := range p.CharsPerTendril {
			angle := startAngle + float64(float64(i)*angleStep)
			radius := baseRadius + float64(math.Pow(float64(i), growthExponent)*growthMultiplier)
			rad := angle * math.Pi / 180

			index := int64(t)*int64(p.CharsPerTendril) + int64(i) + int64(p.IndexOffset)
			char := pickChar(index, p.Seed, p.Alphabet, recent)
			if len(recent) == repeatWindow {
				recent = append(recent[:0], recent[1:]...)
			}
			recent = append(recent, char)

			out = append(out, Placement{
				Tendril:   t,
				Index:     i,
				Char:      char,
				X:         round(float64(radius * math.Cos(rad))),
				Y:         round(float64(radius * math.Sin(rad))),
				FontSize:  taper.size(i),
				Angle:     angle,
				Delay:     baseDelay + float64(float64(i)*perCharDelay) + float64(float64(t)*perTendrilDelay),
				Color:     color,
				Intensity: baseIntensity + float64(float64(i)/float64(p.CharsPerTendril)*(1-baseIntensity)),
			})
		}
	}

	return out, nil
}

// size evaluates the taper at position i. The explicit float64 conversions
// stop the compiler from fusing multiply-adds, which would change results
// on architectures with FMA.
func (t Taper) size(i int) float64 {
	switch {
	case i < innerTierEnd:
		return t.InnerBase + float64(float64(i)*t.InnerStep)
	case i < midTierEnd:
		return t.MidBase + float64(float64(i-innerTierEnd)*t.MidStep)
	default:
		return t.OuterBase + float64(math.Pow(float64(i-midTierEnd), t.OuterExponent)*t.OuterMultiplier)
	}
}

// pickChar selects a glyph for index, re-rolling up to maxAttempts times
// while the candidate repeats one of the recent glyphs. The last candidate
// wins when every attempt collides.
func pickChar(index, seed int64, alphabet []string, recent []string) string {
	charSeed := index*charSeedMul + floorMod(index, charSeedMod)*charSeedModMul + seed

	var char string
	for attempt := range int64(maxAttempts) {
		char = alphabet[scale(pseudoRandom(index+attempt, charSeed), len(alphabet))]
		if !slices.Contains(recent, char) {
			break
		}
	}
	return char
}

// pseudoRandom returns (index*1237 + seed*374761) mod 233333, normalized to
// [0, 233333). The result divided by the modulus is the unit-interval value.
func pseudoRandom(index, seed int64) int64 {
	a := floorMod(floorMod(index, hashModulus)*hashIndexMul, hashModulus)
	b := floorMod(floorMod(seed, hashModulus)*floorMod(hashSeedMul, hashModulus), hashModulus)
	return floorMod(a+b, hashModulus)
}

// scale maps a hash in [0, hashModulus) onto [0, n).
func scale(hash int64, n int) int {
	return int(hash * int64(n) / hashModulus)
}

func floorMod(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

func round(v float64) float64 {
	r := math.Round(v*coordScale) / coordScale
	if r == 0 {
		return 0 // normalize -0
	}
	return r
}
