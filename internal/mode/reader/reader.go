// Package reader implements the reading mode: one spread of the book at a
// time, with choices that turn to other pages.
package reader

import (
	"fmt"
	"strings"

	keyhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/storybook/internal/keys"
	"github.com/zjrosen/storybook/internal/log"
	"github.com/zjrosen/storybook/internal/mode"
	"github.com/zjrosen/storybook/internal/story"
	"github.com/zjrosen/storybook/internal/ui/bookview"
	"github.com/zjrosen/storybook/internal/ui/help"
	"github.com/zjrosen/storybook/internal/ui/styles"
	"github.com/zjrosen/storybook/internal/ui/toaster"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(styles.OverlayTitleColor)

// Model is the reader mode.
type Model struct {
	services mode.Services
	reader   *story.Reader
	book     bookview.Model
	keys     keys.ReaderKeyMap
	help     help.Model
	helpBar  keyhelp.Model
	showHelp bool
	err      error

	width  int
	height int
}

// New opens book at the configured start page, or the book's own start page
// when none is configured.
func New(services mode.Services, book *story.Book) Model {
	km := keys.DefaultReaderKeyMap()
	r := story.NewReaderAt(book, services.Config.StartPage)
	return Model{
		services: services,
		reader:   r,
		book:     bookview.New(services.Markdown).SetSpread(r.Spread()),
		keys:     km,
		help:     help.New(km, book.Title),
		helpBar:  keyhelp.New(),
	}
}

// Init implements mode.Controller.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements mode.Controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.showHelp || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if i, ok := m.book.ChoiceAt(msg); ok {
			return m.pick(i)
		}

	case mode.ReloadFailedMsg:
		m.err = msg.Err
		return m.setSize(m.width, m.height), nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Pick):
		if i, ok := keys.ChoiceIndex(msg.String()); ok {
			return m.pick(i)
		}

	case key.Matches(msg, m.keys.Next):
		m.book = m.book.FocusNext()

	case key.Matches(msg, m.keys.Prev):
		m.book = m.book.FocusPrev()

	case key.Matches(msg, m.keys.Select):
		if c, ok := m.book.Focused(); ok {
			return m.turn(c)
		}

	case key.Matches(msg, m.keys.Back):
		if !m.reader.Back() {
			return m, toaster.Show("This is where the story starts", toaster.StyleInfo)
		}
		m.book = m.book.SetSpread(m.reader.Spread())

	case key.Matches(msg, m.keys.Start):
		m.book = m.book.SetSpread(m.reader.Restart())

	case key.Matches(msg, m.keys.Yank):
		return m, m.yank()
	}
	return m, nil
}

// pick follows the i-th choice of the spread. Digits past the last choice
// do nothing.
func (m Model) pick(i int) (Model, tea.Cmd) {
	choices := m.book.Spread().Choices()
	if i < 0 || i >= len(choices) {
		return m, nil
	}
	return m.turn(choices[i])
}

func (m Model) turn(c story.Choice) (Model, tea.Cmd) {
	spread := m.reader.Choose(c)
	m.book = m.book.SetSpread(spread)
	log.Debug(log.CatMode, "Turned to spread", "left", spread.Left.Number, "right", spread.Right.Number)
	return m, nil
}

func (m Model) yank() tea.Cmd {
	s := m.book.Spread()
	if err := m.services.Clipboard.Copy(bookview.PlainText(s, 0)); err != nil {
		log.ErrorErr(log.CatUI, "Copying spread", err)
		return toaster.Show("Could not copy: "+err.Error(), toaster.StyleError)
	}
	return toaster.Show(fmt.Sprintf("Copied pages %d-%d", s.Left.Number, s.Right.Number), toaster.StyleSuccess)
}

// Reload implements mode.BookReloader. The reader stays on its page.
func (m Model) Reload(book *story.Book) mode.Controller {
	m.reader.Replace(book)
	m.book = m.book.SetSpread(m.reader.Spread())
	m.help = help.New(m.keys, book.Title).SetSize(m.width, m.height)
	m.err = nil
	return m.setSize(m.width, m.height)
}

// Page returns the requested page number.
func (m Model) Page() int {
	return m.reader.Page()
}

// Spread returns the spread on display.
func (m Model) Spread() story.Spread {
	return m.book.Spread()
}

// Focus returns the focused choice index.
func (m Model) Focus() int {
	return m.book.Focus()
}

// HelpVisible reports whether the key help overlay is open.
func (m Model) HelpVisible() bool {
	return m.showHelp
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	return m.setSize(width, height)
}

func (m Model) setSize(width, height int) Model {
	m.width = width
	m.height = height
	m.help = m.help.SetSize(width, height)
	m.helpBar.Width = width
	m.book = m.book.SetSize(width, max(height-m.chromeHeight(), 1))
	return m
}

// chromeHeight is the rows used around the book.
func (m Model) chromeHeight() int {
	h := 1
	if m.services.Config.UI.ShowHelpBar {
		h++
	}
	if m.err != nil {
		h++
	}
	return h
}

// View implements mode.Controller.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	title := m.reader.Book().Title
	header := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(styles.Truncate(strings.ReplaceAll(title, "\n", " "), m.width)))
	parts := []string{header, m.book.View()}
	if m.err != nil {
		banner := styles.ErrorBannerStyle.Render(styles.Truncate("Reload failed: "+m.err.Error(), max(m.width-2, 4)))
		parts = append(parts, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, banner))
	}
	if m.services.Config.UI.ShowHelpBar {
		bar := styles.HelpBarStyle.Render(m.helpBar.View(m.keys))
		parts = append(parts, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar))
	}

	view := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.showHelp {
		view = m.help.Overlay(view)
	}
	return view
}
