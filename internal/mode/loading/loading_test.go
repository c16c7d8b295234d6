package loading

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/storybook/internal/config"
	"github.com/zjrosen/storybook/internal/flags"
	effects "github.com/zjrosen/storybook/internal/loading"
	"github.com/zjrosen/storybook/internal/mode"
	"github.com/zjrosen/storybook/internal/story"
	"github.com/zjrosen/storybook/internal/ui/bootlog"
	"github.com/zjrosen/storybook/internal/ui/vortexview"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

var book = &story.Book{Title: "The Abyss", Start: 2, Pages: story.Pages{}}

func newTestMode(t *testing.T, edit func(*config.Config)) (Model, *fakeClock) {
	t.Helper()
	cfg := config.Defaults()
	if edit != nil {
		edit(&cfg)
	}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := mode.Services{
		Config:  &cfg,
		Open:    func() (*story.Book, error) { return book, nil },
		Layouts: vortexview.NewLayouts(nil),
		Flags:   flags.New(cfg.Flags),
		Clock:   clock,
	}
	return New(svc), clock
}

func tickAt(t *testing.T, m Model, clock *fakeClock, d time.Duration) (Model, tea.Cmd) {
	t.Helper()
	clock.now = clock.now.Add(d)
	return m.update(tickMsg{})
}

func requireDone(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(DoneMsg)
	require.True(t, ok, "expected DoneMsg")
	require.Same(t, book, msg.Book)
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestBootLog_AdvancesWithTime(t *testing.T) {
	m, clock := newTestMode(t, nil)
	require.Len(t, m.BootLines(), effects.InitialEntries)

	m, cmd := tickAt(t, m, clock, 500*time.Millisecond)
	require.NotNil(t, cmd, "keeps ticking")
	require.Len(t, m.BootLines(), effects.InitialEntries+10)
	require.Equal(t, effects.Boot[effects.InitialEntries], m.BootLines()[effects.InitialEntries].Entry)
}

func TestBootLog_StopsAtEndOfScript(t *testing.T) {
	m, clock := newTestMode(t, func(c *config.Config) {
		c.Loading.Duration = time.Hour
		c.Loading.StallAfter = 0
	})

	m, _ = tickAt(t, m, clock, time.Minute)
	require.Len(t, m.BootLines(), len(effects.Boot))
}

func TestFinish_WaitsForBarAndBook(t *testing.T) {
	m, clock := newTestMode(t, nil)

	m, cmd := m.update(openedMsg{book: book})
	require.Nil(t, cmd, "bar is still filling")
	require.Same(t, book, m.Book())

	m, cmd = tickAt(t, m, clock, 2*time.Second)
	_, isDone := cmd().(DoneMsg)
	require.False(t, isDone)

	_, cmd = tickAt(t, m, clock, 2*time.Second)
	requireDone(t, cmd)
}

func TestFinish_BarFullBeforeBook(t *testing.T) {
	m, clock := newTestMode(t, nil)

	m, cmd := tickAt(t, m, clock, 5*time.Second)
	require.NotNil(t, cmd)
	_, isDone := cmd().(DoneMsg)
	require.False(t, isDone, "book is not open yet")

	_, cmd = m.update(openedMsg{book: book})
	requireDone(t, cmd)
}

func TestSkip(t *testing.T) {
	t.Run("before the book opens", func(t *testing.T) {
		m, _ := newTestMode(t, nil)
		m, cmd := m.update(space)
		require.Nil(t, cmd)

		_, cmd = m.update(openedMsg{book: book})
		requireDone(t, cmd)
	})

	t.Run("after the book opens", func(t *testing.T) {
		m, _ := newTestMode(t, nil)
		m, _ = m.update(openedMsg{book: book})
		_, cmd := m.update(tea.KeyMsg{Type: tea.KeyEnter})
		requireDone(t, cmd)
	})
}

func TestDoneIgnoresFurtherMessages(t *testing.T) {
	m, _ := newTestMode(t, nil)
	m, _ = m.update(openedMsg{book: book})
	m, _ = m.update(space)

	_, cmd := m.update(space)
	require.Nil(t, cmd)
}

func TestStall(t *testing.T) {
	m, clock := newTestMode(t, func(c *config.Config) {
		c.Loading.StallAfter = time.Second
		c.Loading.Duration = time.Hour
	})

	m, _ = tickAt(t, m, clock, 900*time.Millisecond)
	require.False(t, m.Stalled())

	m, _ = tickAt(t, m, clock, 100*time.Millisecond)
	require.True(t, m.Stalled())
	lines := m.BootLines()
	require.Equal(t, effects.StallNotice, lines[len(lines)-1].Entry)

	m, _ = tickAt(t, m, clock, 800*time.Millisecond)
	lines = m.BootLines()
	require.Equal(t, effects.Stall.Cycle(0), lines[len(lines)-2].Entry)
	require.Equal(t, effects.Stall.Cycle(1), lines[len(lines)-1].Entry)
}

func TestStall_NotOnceBookIsOpen(t *testing.T) {
	m, clock := newTestMode(t, func(c *config.Config) {
		c.Loading.StallAfter = time.Second
		c.Loading.Duration = time.Hour
	})
	m, _ = m.update(openedMsg{book: book})

	m, _ = tickAt(t, m, clock, 5*time.Second)
	require.False(t, m.Stalled())
}

func TestOpenError(t *testing.T) {
	m, clock := newTestMode(t, func(c *config.Config) { c.Loading.StallAfter = time.Second })
	m = m.setSize(100, 40)

	m, cmd := m.update(openedMsg{err: errors.New("reading story: no such file")})
	require.Nil(t, cmd)
	require.Error(t, m.Err())

	m, _ = tickAt(t, m, clock, 10*time.Second)
	require.False(t, m.Stalled())

	view := ansi.Strip(m.View())
	require.Contains(t, view, "Could not open the story: reading story: no such file")
	require.Contains(t, view, "press q to quit")
}

func TestQuit(t *testing.T) {
	m, _ := newTestMode(t, nil)
	_, cmd := m.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDisabled(t *testing.T) {
	m, _ := newTestMode(t, func(c *config.Config) { c.Loading.Enabled = false })
	m = m.setSize(100, 40)
	require.Empty(t, m.View())

	msg := m.Init()()
	opened, ok := msg.(openedMsg)
	require.True(t, ok, "only the story is opened")

	_, cmd := m.update(opened)
	requireDone(t, cmd)
}

func TestView_Layout(t *testing.T) {
	m, clock := newTestMode(t, nil)
	m = m.setSize(100, 40)
	m, _ = tickAt(t, m, clock, time.Second)

	view := ansi.Strip(m.View())
	require.Len(t, strings.Split(view, "\n"), 40)
	require.Contains(t, view, BarLabel)
	require.Contains(t, view, " 25% ")
	require.Contains(t, view, bootlog.Title)
}

func TestView_ShortScreenDropsBootLog(t *testing.T) {
	m, _ := newTestMode(t, nil)
	m = m.setSize(100, 16)

	view := ansi.Strip(m.View())
	require.Contains(t, view, BarLabel)
	require.NotContains(t, view, bootlog.Title)
}

func TestBootLogFlagOff(t *testing.T) {
	m, _ := newTestMode(t, func(c *config.Config) { c.Flags = map[string]bool{flags.FlagBootLog: false} })
	m = m.setSize(100, 40)
	require.NotContains(t, ansi.Strip(m.View()), bootlog.Title)
}

func TestSecondarySpiralFollowsFlag(t *testing.T) {
	m, _ := newTestMode(t, nil)
	require.Equal(t, 2, m.spinner.Layers())

	m, _ = newTestMode(t, func(c *config.Config) { c.Flags = map[string]bool{flags.FlagSecondaryVortex: false} })
	require.Equal(t, 1, m.spinner.Layers())
}
