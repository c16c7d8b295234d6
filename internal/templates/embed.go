package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/zjrosen/storybook/internal/story"
)

// storyFiles embeds the built-in stories. The structure is:
//   - stories/<name>.yaml
//
//go:embed stories
var storyFiles embed.FS

const storiesDir = "stories"

// DefaultStory is opened when no story is configured.
const DefaultStory = "journey"

// ErrUnknownStory is returned when no embedded story has the requested name.
var ErrUnknownStory = errors.New("unknown story")

// StoriesFS returns the embedded filesystem containing the built-in stories.
func StoriesFS() fs.FS {
	return storyFiles
}

// StoryNames lists the embedded stories in alphabetical order.
func StoryNames() []string {
	entries, err := fs.ReadDir(storyFiles, storiesDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	slices.Sort(names)
	return names
}

// Has reports whether name is an embedded story.
func Has(name string) bool {
	return slices.Contains(StoryNames(), name)
}

// Source returns the raw YAML of the named story.
func Source(name string) ([]byte, error) {
	data, err := fs.ReadFile(storyFiles, path.Join(storiesDir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStory, name)
	}
	return data, nil
}

// Story parses the named embedded story.
func Story(name string) (*story.Book, error) {
	data, err := Source(name)
	if err != nil {
		return nil, err
	}
	b, err := story.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("embedded story %s: %w", name, err)
	}
	return b, nil
}
