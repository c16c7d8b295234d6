// Package mode defines the mode controller interface and shared services.
package mode

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/storybook/internal/config"
	"github.com/zjrosen/storybook/internal/flags"
	"github.com/zjrosen/storybook/internal/mode/shared"
	"github.com/zjrosen/storybook/internal/story"
	"github.com/zjrosen/storybook/internal/ui/markdown"
	"github.com/zjrosen/storybook/internal/ui/vortexview"
)

// AppMode identifies the current application mode.
type AppMode int

const (
	ModeLoading AppMode = iota
	ModeCover
	ModeReader
)

func (m AppMode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeCover:
		return "cover"
	case ModeReader:
		return "reader"
	default:
		return "unknown"
	}
}

// Controller defines the interface all modes must implement.
type Controller interface {
	// Init returns initial commands for the mode.
	Init() tea.Cmd

	// Update handles messages and returns updated model and commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the mode's UI.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller
}

// BookReloader is implemented by modes that show the book and must follow
// edits to the story file.
type BookReloader interface {
	Reload(book *story.Book) Controller
}

// ReloadFailedMsg reports that the story file changed but could not be
// parsed. The book on screen stays as it was.
type ReloadFailedMsg struct {
	Err error
}

// OpenFunc loads the story being read.
type OpenFunc func() (*story.Book, error)

// Services contains shared dependencies injected into mode controllers.
type Services struct {
	Config     *config.Config
	ConfigPath string
	// StoryPath is the story file on disk, empty for embedded stories.
	StoryPath string
	Open      OpenFunc
	Layouts   *vortexview.Layouts
	Markdown  *markdown.Pool
	Flags     *flags.Registry
	Clipboard shared.Clipboard
	Clock     shared.Clock
}
