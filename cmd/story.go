package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/storybook/internal/story"
	"github.com/zjrosen/storybook/internal/templates"
)

// storySource is either an embedded story (path empty) or a file on disk.
type storySource struct {
	name string
	path string
}

// resolveStory turns a configured story reference into a source. Embedded
// names win over files of the same name in the working directory.
func resolveStory(ref string) (storySource, error) {
	if ref == "" {
		ref = templates.DefaultStory
	}
	if templates.Has(ref) {
		return storySource{name: ref}, nil
	}

	info, err := os.Stat(ref)
	if err != nil {
		return storySource{}, fmt.Errorf("story %q is not a built-in story (%s) or a readable file: %w",
			ref, strings.Join(templates.StoryNames(), ", "), err)
	}
	if info.IsDir() {
		return storySource{}, fmt.Errorf("story %q is a directory", ref)
	}
	abs, err := filepath.Abs(ref)
	if err != nil {
		return storySource{}, fmt.Errorf("resolving story path: %w", err)
	}
	return storySource{
		name: strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs)),
		path: abs,
	}, nil
}

func (s storySource) open() (*story.Book, error) {
	if s.path == "" {
		return templates.Story(s.name)
	}
	return story.LoadFile(s.path)
}

// openConfiguredStory resolves and parses the configured story.
func openConfiguredStory() (*story.Book, error) {
	src, err := resolveStory(cfg.Story)
	if err != nil {
		return nil, err
	}
	return src.open()
}
