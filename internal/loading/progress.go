package loading

import (
	"math"
	"time"
)

// BarSteps is how many blocks the glitch bar fills in. Progress between
// steps does not move the bar.
const BarSteps = 16

// Progress returns the auto-advancing percentage after elapsed, clamped to
// [0, 100]. A non-positive duration means loading is already complete.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 100
	}
	p := float64(elapsed) / float64(duration) * 100
	return math.Max(0, math.Min(100, p))
}

// Segments returns how many of width cells are filled at progress. The fill
// advances in BarSteps discrete jumps and reaches width only at 100.
func Segments(progress float64, width int) int {
	if width <= 0 || progress <= 0 || math.IsNaN(progress) {
		return 0
	}
	if progress >= 100 {
		return width
	}
	step := int(progress / 100 * BarSteps)
	return step * width / BarSteps
}

// Percent rounds progress for display.
func Percent(progress float64) int {
	return int(math.Round(math.Max(0, math.Min(100, progress))))
}
