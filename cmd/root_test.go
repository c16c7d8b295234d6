package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/storybook/internal/presentation"
	"github.com/zjrosen/storybook/internal/templates"
	"github.com/zjrosen/storybook/internal/testutil"
	"github.com/zjrosen/storybook/internal/vortex"
)

// resetFlags puts every flag back to its default so one test's flags do
// not leak into the next Execute.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI against a fresh config file in a temp dir.
func execute(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	if cfgPath == "" {
		cfgPath = filepath.Join(t.TempDir(), "config.yaml")
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveStory(t *testing.T) {
	src, err := resolveStory("")
	require.NoError(t, err)
	require.Equal(t, templates.DefaultStory, src.name)
	require.Empty(t, src.path, "embedded stories have no file to watch")

	path := testutil.NewBuilder(t).WithAbyssStory().WriteFile("abyss.yaml")
	src, err = resolveStory(path)
	require.NoError(t, err)
	require.Equal(t, "abyss", src.name)
	require.True(t, filepath.IsAbs(src.path))

	book, err := src.open()
	require.NoError(t, err)
	require.Equal(t, "The Abyss", book.Title)

	_, err = resolveStory(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "journey")

	_, err = resolveStory(t.TempDir())
	require.ErrorContains(t, err, "directory")
}

func TestStories_JSON(t *testing.T) {
	out, err := execute(t, "", "stories", "--format", "json")
	require.NoError(t, err)

	var list []presentation.StoryDTO
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Name)
		require.NotEmpty(t, s.Title)
		require.Positive(t, s.Pages)
	}
	require.Equal(t, templates.StoryNames(), names)
}

func TestStories_BadFormat(t *testing.T) {
	_, err := execute(t, "", "stories", "--format", "xml")
	require.ErrorContains(t, err, "unknown format")
}

func TestVortex_JSON(t *testing.T) {
	out, err := execute(t, "", "vortex", "--seed", "7", "--format", "json")
	require.NoError(t, err)

	var placements []vortex.Placement
	require.NoError(t, json.Unmarshal([]byte(out), &placements))
	p := vortex.Primary()
	require.Len(t, placements, p.TendrilCount*p.CharsPerTendril)

	again, err := execute(t, "", "vortex", "--seed", "7", "--format", "json")
	require.NoError(t, err)
	require.Equal(t, out, again, "same seed, same layout")

	secondary, err := execute(t, "", "vortex", "--seed", "7", "--secondary", "--format", "json")
	require.NoError(t, err)
	require.NotEqual(t, out, secondary)
}

func TestVortex_Text(t *testing.T) {
	out, err := execute(t, "", "vortex", "--format", "text")
	require.NoError(t, err)
	require.Contains(t, out, "Tendril")
	require.Contains(t, out, "Intensity")
}

func TestSpread(t *testing.T) {
	path := testutil.NewBuilder(t).WithAbyssStory().WriteFile("abyss.yaml")

	out, err := execute(t, "", "spread", "3", "--story", path)
	require.NoError(t, err)
	require.Contains(t, out, "Page 2")
	require.Contains(t, out, "Page 3")
	require.Contains(t, out, "Explore the ledge")
	require.Less(t, strings.Index(out, "Page 2"), strings.Index(out, "Page 3"), "the even page prints first")
}

func TestSpread_BadPage(t *testing.T) {
	require.Contains(t, spreadCmd.Long, "must be 1 or greater")

	for _, arg := range []string{"abc", "0", "-3"} {
		_, err := execute(t, "", "spread", "--", arg)
		require.ErrorContains(t, err, "page must be a positive number", arg)
	}
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "", "check", "--story", testutil.NewBuilder(t).WithAbyssStory().WriteFile("abyss.yaml"))
	require.NoError(t, err)
	require.Contains(t, out, "No issues found.")

	out, err = execute(t, "", "check", "--story", testutil.NewBuilder(t).WithBrokenStory().WriteFile("broken.yaml"))
	require.ErrorIs(t, err, errIssuesFound)
	require.Contains(t, out, "dangling-choice")
	require.Contains(t, out, "unreachable-page")
	require.Contains(t, out, "issue(s)")
}

func TestCheck_JSON(t *testing.T) {
	out, err := execute(t, "", "check", "--format", "json", "--story", testutil.NewBuilder(t).WithBrokenStory().WriteFile("broken.yaml"))
	require.ErrorIs(t, err, errIssuesFound)

	var issues []presentation.IssueDTO
	require.NoError(t, json.Unmarshal([]byte(out), &issues))
	require.NotEmpty(t, issues)
	require.Equal(t, "dangling-choice", issues[0].Kind)
	require.Equal(t, 2, issues[0].Page)
}

func TestUse(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, cfgPath, "use", "engineer")
	require.NoError(t, err)
	require.Contains(t, out, "Now reading")

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "story: engineer")
	require.Contains(t, string(data), "# Storybook Configuration", "comments survive the edit")

	_, err = execute(t, cfgPath, "use", "no-such-story")
	require.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("vortex:\n  fps: 500\n"), 0o600))

	_, err := execute(t, cfgPath, "stories")
	require.ErrorContains(t, err, "invalid configuration")
}
