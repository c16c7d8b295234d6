// Package loading implements the loading screen: the vortex spinner, the
// glitch progress bar and the boot log, shown while the story is opened.
package loading

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/storybook/internal/flags"
	"github.com/zjrosen/storybook/internal/keys"
	effects "github.com/zjrosen/storybook/internal/loading"
	"github.com/zjrosen/storybook/internal/log"
	"github.com/zjrosen/storybook/internal/mode"
	"github.com/zjrosen/storybook/internal/mode/shared"
	"github.com/zjrosen/storybook/internal/story"
	"github.com/zjrosen/storybook/internal/ui/bootlog"
	"github.com/zjrosen/storybook/internal/ui/glitchbar"
	"github.com/zjrosen/storybook/internal/ui/styles"
	"github.com/zjrosen/storybook/internal/ui/vortexview"
)

const (
	// BarLabel is drawn above the progress bar.
	BarLabel = "LOADING STORY"

	maxBarWidth = 60
	// barHeight is the label plus the framed bar.
	barHeight = 4
	// bootHeight is the boot log panel including its border.
	bootHeight = 9
	// minSpinnerHeight is the least room left for the vortex before the
	// boot log is dropped.
	minSpinnerHeight = 8
)

// DoneMsg reports that loading finished with the opened book.
type DoneMsg struct {
	Book *story.Book
}

type tickMsg struct{}

type openedMsg struct {
	book *story.Book
	err  error
}

// Model is the loading mode.
type Model struct {
	services mode.Services
	started  time.Time
	elapsed  time.Duration

	spinner vortexview.Model
	bar     glitchbar.Model
	boot    bootlog.Model
	bootOn  bool

	bootNext  int
	bootAt    time.Duration
	stalled   bool
	stallNext int
	stallAt   time.Duration

	book    *story.Book
	err     error
	skipped bool
	done    bool

	width  int
	height int
}

// New creates the loading mode and starts its clock. When the loading screen
// is disabled the mode draws nothing and finishes as soon as the story opens.
func New(services mode.Services) Model {
	cfg := services.Config.Vortex
	spinner, err := vortexview.New(context.Background(), services.Layouts, vortexview.Options{
		Seed:      cfg.Seed,
		Secondary: cfg.Secondary && services.Flags.Enabled(flags.FlagSecondaryVortex),
		Glitch:    true,
	})
	if err != nil {
		log.ErrorErr(log.CatVortex, "Building loading spinner", err)
	}

	return Model{
		services: services,
		started:  services.Clock.Now(),
		skipped:  !services.Config.Loading.Enabled,
		spinner:  spinner,
		bar:      glitchbar.New(BarLabel).WithPercentage(true).WithIntensity(glitchbar.IntensityHigh),
		boot:     bootlog.New(services.Clock),
		bootOn:   services.Flags.Enabled(flags.FlagBootLog),
		bootNext: effects.InitialEntries,
	}
}

// Init starts the frame ticker and opens the story.
func (m Model) Init() tea.Cmd {
	if !m.services.Config.Loading.Enabled {
		return open(m.services.Open)
	}
	return tea.Batch(m.tick(), open(m.services.Open))
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.services.Config.Vortex.FrameInterval(), func(time.Time) tea.Msg { return tickMsg{} })
}

func open(fn mode.OpenFunc) tea.Cmd {
	return func() tea.Msg {
		book, err := fn()
		return openedMsg{book: book, err: err}
	}
}

// Update implements mode.Controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tickMsg:
		m = m.advance(m.services.Clock.Now().Sub(m.started))
		if m.ready() {
			return m.finish()
		}
		return m, m.tick()

	case openedMsg:
		if msg.err != nil {
			m.err = msg.err
			log.ErrorErr(log.CatStory, "Opening story", msg.err)
			m.boot = m.boot.Append(effects.Entry{Text: "ERROR: " + msg.err.Error(), Kind: effects.KindError})
			return m, nil
		}
		m.book = msg.book
		log.Info(log.CatMode, "Story ready", "title", msg.book.Title, "elapsed", m.elapsed)
		if m.skipped || m.ready() {
			return m.finish()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Loading.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Loading.Skip):
			m.skipped = true
			if m.book != nil {
				return m.finish()
			}
		}
	}
	return m, nil
}

// ready reports whether the bar has filled and the book is open.
func (m Model) ready() bool {
	return m.book != nil && effects.Progress(m.elapsed, m.services.Config.Loading.Duration) >= 100
}

func (m Model) finish() (Model, tea.Cmd) {
	m.done = true
	book := m.book
	log.Info(log.CatMode, "Loading finished", "elapsed", shared.FormatElapsed(m.elapsed), "skipped", m.skipped)
	return m, func() tea.Msg { return DoneMsg{Book: book} }
}

// advance moves every effect to elapsed.
func (m Model) advance(elapsed time.Duration) Model {
	m.elapsed = elapsed
	m.spinner = m.spinner.Advance(elapsed)
	m.bar = m.bar.SetProgress(effects.Progress(elapsed, m.services.Config.Loading.Duration))

	for elapsed-m.bootAt >= effects.BootInterval {
		e, ok := effects.Boot.Next(m.bootNext)
		if !ok {
			break
		}
		m.boot = m.boot.Append(e)
		m.bootNext++
		m.bootAt += effects.BootInterval
	}

	if m.stalling(elapsed) {
		if !m.stalled {
			m.stalled = true
			m.stallAt = elapsed
			log.Warn(log.CatMode, "Loading stalled", "elapsed", elapsed)
			m.boot = m.boot.Append(effects.StallNotice)
		}
		for elapsed-m.stallAt >= effects.StallInterval {
			m.boot = m.boot.Append(effects.Stall.Cycle(m.stallNext))
			m.stallNext++
			m.stallAt += effects.StallInterval
		}
	}
	return m
}

func (m Model) stalling(elapsed time.Duration) bool {
	after := m.services.Config.Loading.StallAfter
	return m.book == nil && m.err == nil && after > 0 && elapsed >= after
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	return m.setSize(width, height)
}

func (m Model) setSize(width, height int) Model {
	m.width = width
	m.height = height

	spinnerHeight := height - barHeight - 1
	if m.bootOn && spinnerHeight-bootHeight >= minSpinnerHeight {
		spinnerHeight -= bootHeight
		m.boot = m.boot.SetSize(width, bootHeight)
	} else {
		m.boot = m.boot.SetSize(0, 0)
	}
	m.spinner = m.spinner.SetSize(width, max(spinnerHeight, 0))
	m.bar = m.bar.SetWidth(min(maxBarWidth, max(width-4, 10)))
	return m
}

// Elapsed returns how long loading has run as of the last frame.
func (m Model) Elapsed() time.Duration {
	return m.elapsed
}

// Book returns the opened book, nil until it is ready.
func (m Model) Book() *story.Book {
	return m.book
}

// Err returns the error that stopped the story from opening.
func (m Model) Err() error {
	return m.err
}

// Stalled reports whether the stall log has started.
func (m Model) Stalled() bool {
	return m.stalled
}

// BootLines returns the boot log lines written so far.
func (m Model) BootLines() []bootlog.Line {
	return m.boot.Lines()
}

// View implements mode.Controller.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 || (!m.services.Config.Loading.Enabled && m.err == nil) {
		return ""
	}

	parts := []string{m.spinner.View(), ""}
	if m.err != nil {
		msg := styles.ErrorBannerStyle.Render("Could not open the story: " + m.err.Error())
		parts = append(parts, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, msg),
			lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.HelpBarStyle.Render("press q to quit")))
	} else {
		parts = append(parts, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.bar.View()))
	}
	if m.bootOn && m.boot.View() != "" {
		parts = append(parts, m.boot.View())
	}
	return lipgloss.NewStyle().MaxHeight(m.height).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
