package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/storybook/internal/config"
	"github.com/zjrosen/storybook/internal/log"
)

var useCmd = &cobra.Command{
	Use:   "use <story>",
	Short: "Set the story opened by default",
	Long: `Save <story> as the default story in the config file. <story> is a
built-in story name or a path to a YAML story; paths are stored as
absolute paths. Other settings and comments in the file are kept.

Examples:
  storybook use engineer
  storybook use ./my-story.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := resolveStory(args[0])
		if err != nil {
			return err
		}
		book, err := src.open()
		if err != nil {
			return err
		}

		ref := src.name
		if src.path != "" {
			ref = src.path
		}
		path := configPath()
		if err := config.SaveStory(path, ref); err != nil {
			return err
		}
		log.Info(log.CatConfig, "Default story saved", "story", ref, "config", path)
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Now reading %q (%s)\n", book.Title, ref)
		return err
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
