package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/storybook/internal/presentation"
	"github.com/zjrosen/storybook/internal/templates"
)

var storiesFormat string

var storiesCmd = &cobra.Command{
	Use:   "stories",
	Short: "List the built-in stories",
	Long: `List the stories embedded in the binary. Any of these names can be
passed to --story or saved with 'storybook use'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := presentation.ParseFormat(storiesFormat)
		if err != nil {
			return err
		}

		names := templates.StoryNames()
		list := make([]presentation.StoryDTO, 0, len(names))
		for _, name := range names {
			book, err := templates.Story(name)
			if err != nil {
				return fmt.Errorf("loading %s: %w", name, err)
			}
			list = append(list, presentation.FromBook(name, book))
		}
		return presentation.NewFormatter(cmd.OutOrStdout(), format).FormatStories(list)
	},
}

func init() {
	storiesCmd.Flags().StringVarP(&storiesFormat, "format", "f", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(storiesCmd)
}
