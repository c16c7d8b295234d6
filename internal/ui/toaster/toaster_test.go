package toaster

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m, cmd := New().Show("Copied", StyleSuccess)

	assert.True(t, m.Visible())
	assert.Equal(t, "Copied", m.Message())
	assert.Contains(t, m.View(), "✓ Copied")
	assert.NotNil(t, cmd)
}

func TestShow_ReplacesExisting(t *testing.T) {
	m, _ := New().Show("First", StyleSuccess)
	m, _ = m.Show("Second", StyleError)

	assert.Contains(t, m.View(), "✗ Second")
	assert.NotContains(t, m.View(), "First")
}

func TestDismiss_IgnoresStaleTimers(t *testing.T) {
	m, _ := New().Show("First", StyleInfo)
	stale := DismissMsg{Seq: m.seq}
	m, _ = m.Show("Second", StyleWarn)

	m = m.Dismiss(stale)
	require.True(t, m.Visible(), "a timer from the first toast must not hide the second")

	m = m.Dismiss(DismissMsg{Seq: m.seq})
	require.False(t, m.Visible())
	require.Empty(t, m.View())
}

func TestShowCmd(t *testing.T) {
	msg := Show("Reloaded", StyleInfo)()
	require.Equal(t, ShowMsg{Message: "Reloaded", Style: StyleInfo}, msg)
}

func TestView_Marks(t *testing.T) {
	tests := []struct {
		style Style
		mark  string
	}{
		{StyleSuccess, "✓"},
		{StyleError, "✗"},
		{StyleInfo, "·"},
		{StyleWarn, "!"},
	}
	for _, tt := range tests {
		m, _ := New().Show("note", tt.style)
		assert.Contains(t, m.View(), tt.mark+" note")
		assert.Contains(t, m.View(), "╭")
	}
}

func TestOverlay_BottomCenter(t *testing.T) {
	m, _ := New().Show("Saved", StyleSuccess)
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 40)+"\n", 10), "\n")

	lines := strings.Split(ansi.Strip(m.Overlay(bg, 40, 10)), "\n")
	require.Len(t, lines, 10)
	require.Equal(t, strings.Repeat(".", 40), lines[9], "one row of margin below the toast")
	require.Contains(t, lines[7], "✓ Saved")
	require.Equal(t, strings.Repeat(".", 40), lines[0])
}

func TestOverlay_HiddenReturnsBackground(t *testing.T) {
	require.Equal(t, "bg", New().Overlay("bg", 10, 1))
}
