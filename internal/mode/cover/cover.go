// Package cover implements the cover mode shown between loading and reading.
package cover

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/storybook/internal/keys"
	"github.com/zjrosen/storybook/internal/log"
	"github.com/zjrosen/storybook/internal/mode"
	"github.com/zjrosen/storybook/internal/story"
	"github.com/zjrosen/storybook/internal/ui/coverview"
	"github.com/zjrosen/storybook/internal/ui/vortexview"
)

// OpenMsg asks the app to open the book at its first spread.
type OpenMsg struct {
	Book *story.Book
}

type tickMsg struct{}

// Model is the cover mode. The cover illustration is a slow vortex.
type Model struct {
	services mode.Services
	book     *story.Book
	cover    coverview.Model
	art      vortexview.Model
	started  time.Time
}

// New creates the cover for book.
func New(services mode.Services, book *story.Book) Model {
	art, err := vortexview.New(context.Background(), services.Layouts, vortexview.Options{Seed: services.Config.Vortex.Seed})
	if err != nil {
		log.ErrorErr(log.CatVortex, "Building cover art", err)
	}
	return Model{
		services: services,
		book:     book,
		cover:    coverview.New(book),
		art:      art,
		started:  services.Clock.Now(),
	}
}

// Init starts the art animation.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.services.Config.Vortex.FrameInterval(), func(time.Time) tea.Msg { return tickMsg{} })
}

// Update implements mode.Controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.art = m.art.Advance(m.services.Clock.Now().Sub(m.started))
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Cover.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Cover.Open):
			book := m.book
			log.Info(log.CatMode, "Opening book", "title", book.Title)
			return m, func() tea.Msg { return OpenMsg{Book: book} }
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			book := m.book
			return m, func() tea.Msg { return OpenMsg{Book: book} }
		}
	}
	return m, nil
}

// Reload implements mode.BookReloader.
func (m Model) Reload(book *story.Book) mode.Controller {
	m.book = book
	m.cover = m.cover.SetBook(book)
	return m
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	return m.setSize(width, height)
}

func (m Model) setSize(width, height int) Model {
	m.cover = m.cover.SetSize(width, height)
	m.art = m.art.SetSize(m.cover.ArtSize())
	return m
}

// View implements mode.Controller.
func (m Model) View() string {
	return m.cover.SetArt(m.art.View()).View()
}
