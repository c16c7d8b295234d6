package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = "AAAAA\nAAAAA\nAAAAA\nAAAAA\nAAAAA"

func TestPlace_Center(t *testing.T) {
	result := Place(Config{Width: 5, Height: 3, Position: Center}, "XX\nXX", "AAAAA\nAAAAA\nAAAAA")

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "AXXAA", lines[0])
	assert.Equal(t, "AXXAA", lines[1])
	assert.Equal(t, "AAAAA", lines[2])
}

func TestPlace_OversizedForegroundStartsAtOrigin(t *testing.T) {
	result := Place(Config{Width: 3, Height: 3}, "XXXXX\nXXXXX", "AAA\nAAA\nAAA")

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "XXXXX", lines[0])
	assert.Equal(t, "AAA", lines[2])
}

func TestPlace_TopAndBottom(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		row  int
	}{
		{"top", Config{Width: 5, Height: 5, Position: Top}, 0},
		{"top with margin", Config{Width: 5, Height: 5, Position: Top, MarginY: 1}, 1},
		{"bottom", Config{Width: 5, Height: 5, Position: Bottom}, 4},
		{"bottom with margin", Config{Width: 5, Height: 5, Position: Bottom, MarginY: 1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(Place(tt.cfg, "XX", page), "\n")
			for i, line := range lines {
				if i == tt.row {
					assert.Equal(t, "AXXAA", line)
				} else {
					assert.Equal(t, "AAAAA", line, "row %d", i)
				}
			}
		})
	}
}

func TestPlace_PadsShortBackground(t *testing.T) {
	result := Place(Config{Width: 4, Height: 3}, "X", "")

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " X  ", lines[1])
}

func TestPlace_KeepsStyledBackground(t *testing.T) {
	bg := lipgloss.NewStyle().Bold(true).Render("AAAAA")
	result := Place(Config{Width: 5, Height: 1}, "X", bg)

	assert.Equal(t, 5, lipgloss.Width(result))
	assert.Contains(t, result, "X")
}
