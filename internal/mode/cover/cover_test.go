package cover

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/storybook/internal/cachemanager"
	"github.com/zjrosen/storybook/internal/config"
	"github.com/zjrosen/storybook/internal/mode"
	"github.com/zjrosen/storybook/internal/story"
	"github.com/zjrosen/storybook/internal/ui/coverview"
	"github.com/zjrosen/storybook/internal/ui/vortexview"
	"github.com/zjrosen/storybook/internal/vortex"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T) (Model, *fakeClock) {
	t.Helper()
	cfg := config.Defaults()
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	cache := cachemanager.NewInMemoryCacheManager[string, []vortex.Placement]("layouts", time.Minute, time.Minute)
	svc := mode.Services{Config: &cfg, Layouts: vortexview.NewLayouts(cache), Clock: clock}
	book := &story.Book{Title: "The Abyss", Author: "R. A. Montgomery"}
	return New(svc, book).setSize(100, 40), clock
}

func TestOpenKeys(t *testing.T) {
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	} {
		m, _ := newTestModel(t)
		_, cmd := m.update(msg)
		require.NotNil(t, cmd)
		open, ok := cmd().(OpenMsg)
		require.True(t, ok)
		require.Equal(t, "The Abyss", open.Book.Title)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m, clock := newTestModel(t)
	clock.now = clock.now.Add(3 * time.Second)
	m, cmd := m.update(tickMsg{})
	require.NotNil(t, cmd, "the art keeps animating")

	view := ansi.Strip(m.View())
	require.Len(t, strings.Split(view, "\n"), 40)
	require.Contains(t, view, coverview.Badge)
	require.Contains(t, view, "THE ABYSS")
	require.Contains(t, view, "by R. A. Montgomery")
	require.Positive(t, m.art.Grid().Count(), "the vortex is drawn inside the frame")
}

func TestReload(t *testing.T) {
	m, _ := newTestModel(t)
	c := m.Reload(&story.Book{Title: "The Abyss, Revised"})

	view := ansi.Strip(c.View())
	require.Contains(t, view, "THE ABYSS, REVISED")
	require.NotContains(t, view, "Montgomery")
}
