package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToDark(t *testing.T) {
	r, err := New(40, "")
	require.NoError(t, err)
	require.Equal(t, 40, r.Width())
	require.Equal(t, StyleDark, r.Style())
}

func TestNew_UnknownStyle(t *testing.T) {
	_, err := New(40, "no-such-style")
	require.Error(t, err)
}

func TestRender_Emphasis(t *testing.T) {
	r, err := New(60, StyleLight)
	require.NoError(t, err)

	out, err := r.Render("You can *not* believe your eyes.")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "not")
	require.NotContains(t, plain, "*not*")
	require.False(t, strings.HasPrefix(out, "\n"))
	require.False(t, strings.HasSuffix(out, "\n"))
}

func TestRender_WrapsAtWidth(t *testing.T) {
	r, err := New(20, StyleDark)
	require.NoError(t, err)

	out, err := r.Render(strings.Repeat("word ", 20))
	require.NoError(t, err)

	lines := strings.Split(ansi.Strip(out), "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		require.LessOrEqual(t, len(strings.TrimRight(line, " ")), 20, "line %q", line)
	}
}

func TestPool_ReusesRenderer(t *testing.T) {
	p := NewPool(StyleDark)

	_, err := p.Render("one", 30)
	require.NoError(t, err)
	_, err = p.Render("two", 30)
	require.NoError(t, err)
	_, err = p.Render("three", 50)
	require.NoError(t, err)

	require.Len(t, p.renderers, 2)
}
