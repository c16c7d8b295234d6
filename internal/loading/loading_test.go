package loading

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestScriptNext(t *testing.T) {
	e, ok := Boot.Next(0)
	require.True(t, ok)
	require.Equal(t, Entry{"Initializing system boot sequence...", KindCommand}, e)

	last, ok := Boot.Next(len(Boot) - 1)
	require.True(t, ok)
	require.Equal(t, "System ready - Awaiting user command", last.Text)

	_, ok = Boot.Next(len(Boot))
	require.False(t, ok)
	_, ok = Boot.Next(-1)
	require.False(t, ok)
}

func TestScriptCycle(t *testing.T) {
	require.Equal(t, Stall[0], Stall.Cycle(0))
	require.Equal(t, Stall[0], Stall.Cycle(len(Stall)))
	require.Equal(t, Stall[len(Stall)-1], Stall.Cycle(-1))
	require.Equal(t, Entry{}, Script(nil).Cycle(3))
}

func TestBootStartsWithInitialEntries(t *testing.T) {
	require.Greater(t, len(Boot), InitialEntries)
	require.Equal(t, KindWarning, StallNotice.Kind)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "info", KindInfo.String())
	require.Equal(t, "command", KindCommand.String())
	require.Equal(t, "success", KindSuccess.String())
	require.Equal(t, "warning", KindWarning.String())
	require.Equal(t, "error", KindError.String())
}

func TestProgress(t *testing.T) {
	require.InDelta(t, 0.0, Progress(0, 5*time.Second), 1e-9)
	require.InDelta(t, 50.0, Progress(2500*time.Millisecond, 5*time.Second), 1e-9)
	require.InDelta(t, 100.0, Progress(10*time.Second, 5*time.Second), 1e-9)
	require.InDelta(t, 0.0, Progress(-time.Second, 5*time.Second), 1e-9)
	require.InDelta(t, 100.0, Progress(0, 0), 1e-9)
}

func TestSegments(t *testing.T) {
	tests := []struct {
		progress float64
		width    int
		want     int
	}{
		{0, 32, 0},
		{3, 32, 0},
		{6.25, 32, 2},
		{50, 32, 16},
		{99.9, 32, 30},
		{100, 32, 32},
		{150, 32, 32},
		{50, 0, 0},
		{-5, 32, 0},
		{math.NaN(), 32, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Segments(tt.progress, tt.width), "progress=%v width=%d", tt.progress, tt.width)
	}
}

func TestSegments_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 200).Draw(t, "width")
		a := rapid.Float64Range(0, 100).Draw(t, "a")
		b := rapid.Float64Range(a, 100).Draw(t, "b")

		sa, sb := Segments(a, width), Segments(b, width)
		if sa < 0 || sb > width {
			t.Fatalf("segments out of range: %d %d (width %d)", sa, sb, width)
		}
		if sa > sb {
			t.Fatalf("fill went backwards: %v->%d, %v->%d", a, sa, b, sb)
		}
	})
}

func TestPercent(t *testing.T) {
	require.Equal(t, 0, Percent(-1))
	require.Equal(t, 43, Percent(42.6))
	require.Equal(t, 100, Percent(120))
}
