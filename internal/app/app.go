// Package app contains the root application model.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/storybook/internal/keys"
	"github.com/zjrosen/storybook/internal/log"
	"github.com/zjrosen/storybook/internal/mode"
	"github.com/zjrosen/storybook/internal/mode/cover"
	"github.com/zjrosen/storybook/internal/mode/loading"
	"github.com/zjrosen/storybook/internal/mode/reader"
	"github.com/zjrosen/storybook/internal/pubsub"
	"github.com/zjrosen/storybook/internal/story"
	"github.com/zjrosen/storybook/internal/ui/logoverlay"
	"github.com/zjrosen/storybook/internal/ui/toaster"
	"github.com/zjrosen/storybook/internal/watcher"
)

// watcherMsg wraps a story watcher event so it is not mistaken for a log
// event, which shares the same payload type.
type watcherMsg pubsub.Event[string]

// reloadedMsg carries the result of re-reading the story file.
type reloadedMsg struct {
	book *story.Book
	err  error
}

// Model is the root application state.
type Model struct {
	currentMode mode.AppMode
	loading     mode.Controller
	cover       mode.Controller
	reader      mode.Controller

	services mode.Services

	width  int
	height int

	// Toasts raised by any mode are drawn by the app.
	toaster toaster.Model

	debugMode   bool
	logOverlay  logoverlay.Model
	logCancel   context.CancelFunc
	logListener *log.LogListener

	// Story file watcher for hot reload.
	watcherHandle   *watcher.Watcher
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.ContinuousListener[string]
}

// New creates the application in loading mode. debugMode enables the log
// overlay (ctrl+x toggle). The story file is watched when auto reload is on
// and the story came from disk.
func New(services mode.Services, debugMode bool) Model {
	m := Model{
		currentMode: mode.ModeLoading,
		loading:     loading.New(services),
		services:    services,
		toaster:     toaster.New(),
		debugMode:   debugMode,
		logOverlay:  logoverlay.New(),
	}

	if debugMode {
		ctx, cancel := context.WithCancel(context.Background())
		if l := log.NewListener(ctx); l != nil {
			m.logListener = l
			m.logCancel = cancel
		} else {
			cancel()
		}
	}

	if services.Config.AutoReload && services.StoryPath != "" {
		m.startWatcher(services.StoryPath)
	}
	return m
}

func (m *Model) startWatcher(path string) {
	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		log.ErrorErr(log.CatWatcher, "Creating story watcher", err)
		return
	}
	if err := w.Start(); err != nil {
		log.ErrorErr(log.CatWatcher, "Starting story watcher", err)
		_ = w.Stop()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.watcherHandle = w
	m.watcherCancel = cancel
	m.watcherListener = pubsub.NewContinuousListener(ctx, w.Broker())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loading.Init()}
	if m.watcherListener != nil {
		cmds = append(cmds, m.listenWatcher())
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logOverlay.SetSize(msg.Width, msg.Height)
		m.setActive(m.active().SetSize(msg.Width, msg.Height))
		return m, nil

	case tea.MouseMsg:
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}

	case log.LogEvent:
		m.logOverlay, _ = m.logOverlay.Update(msg)
		if m.logListener == nil {
			return m, nil
		}
		return m, m.logListener.Listen()

	case tea.KeyMsg:
		if m.debugMode && key.Matches(msg, keys.App.ToggleLogs) {
			m.logOverlay.Toggle()
			return m, nil
		}
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}

	case loading.DoneMsg:
		c := cover.New(m.services, msg.Book).SetSize(m.width, m.height)
		m.cover = c
		m.loading = nil
		m.currentMode = mode.ModeCover
		log.Info(log.CatMode, "Switched mode", "mode", m.currentMode)
		return m, c.Init()

	case cover.OpenMsg:
		r := reader.New(m.services, msg.Book).SetSize(m.width, m.height)
		m.reader = r
		m.cover = nil
		m.currentMode = mode.ModeReader
		log.Info(log.CatMode, "Switched mode", "mode", m.currentMode)
		return m, r.Init()

	case watcherMsg:
		return m.handleWatcherEvent(msg)

	case reloadedMsg:
		return m.handleReloaded(msg)

	case toaster.ShowMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(msg.Message, msg.Style)
		return m, cmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Dismiss(msg)
		return m, nil

	case logoverlay.CloseMsg:
		m.logOverlay.Hide()
		return m, nil
	}

	c, cmd := m.active().Update(msg)
	m.setActive(c)
	return m, cmd
}

func (m Model) listenWatcher() tea.Cmd {
	listen := m.watcherListener.Listen()
	return func() tea.Msg {
		if event, ok := listen().(pubsub.Event[string]); ok {
			return watcherMsg(event)
		}
		return nil
	}
}

func (m Model) handleWatcherEvent(msg watcherMsg) (tea.Model, tea.Cmd) {
	if m.watcherListener == nil {
		return m, nil
	}
	switch msg.Type {
	case pubsub.ChangedEvent:
		path := msg.Payload
		load := func() tea.Msg {
			book, err := story.LoadFile(path)
			return reloadedMsg{book: book, err: err}
		}
		return m, tea.Batch(load, m.listenWatcher())
	case pubsub.FailedEvent:
		log.Warn(log.CatWatcher, "Story watcher reported an error", "error", msg.Payload)
	}
	return m, m.listenWatcher()
}

// handleReloaded swaps the new book into every mode that shows one. A story
// that fails to parse leaves the old book on screen.
func (m Model) handleReloaded(msg reloadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.ErrorErr(log.CatStory, "Reloading story", msg.err)
		var cmd tea.Cmd
		if m.reader != nil {
			m.reader, cmd = m.reader.Update(mode.ReloadFailedMsg{Err: msg.err})
		}
		return m, tea.Batch(cmd, toaster.Show("Story has errors, keeping the last good version", toaster.StyleError))
	}

	reloaded := false
	for _, c := range []*mode.Controller{&m.cover, &m.reader} {
		if r, ok := (*c).(mode.BookReloader); ok {
			*c = r.Reload(msg.book)
			reloaded = true
		}
	}
	if !reloaded {
		log.Debug(log.CatStory, "Story changed before it was opened", "mode", m.currentMode)
		return m, nil
	}
	log.Info(log.CatStory, "Story reloaded", "title", msg.book.Title)
	return m, toaster.Show("Story reloaded", toaster.StyleSuccess)
}

// active returns the controller for the current mode.
func (m Model) active() mode.Controller {
	switch m.currentMode {
	case mode.ModeCover:
		return m.cover
	case mode.ModeReader:
		return m.reader
	default:
		return m.loading
	}
}

func (m *Model) setActive(c mode.Controller) {
	switch m.currentMode {
	case mode.ModeCover:
		m.cover = c
	case mode.ModeReader:
		m.reader = c
	default:
		m.loading = c
	}
}

// Mode returns the current mode.
func (m Model) Mode() mode.AppMode {
	return m.currentMode
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.active().View()

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	if m.debugMode && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}
	return zone.Scan(view)
}

// Close releases the log listener and the story watcher.
func (m *Model) Close() error {
	if m.logCancel != nil {
		m.logCancel()
	}
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}
