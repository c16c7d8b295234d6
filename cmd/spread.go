package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/storybook/internal/ui/bookview"
)

var spreadWidth int

var spreadCmd = &cobra.Command{
	Use:   "spread <page>",
	Short: "Print the two-page spread that shows a page",
	Long: `Print the spread containing <page> as plain text: the even page on the
left, the odd page on the right, and the numbered choices the reader
would offer. Pages missing from the story print as blank paper.
<page> must be 1 or greater; stories number their pages from 1.

Examples:
  storybook spread 2
  storybook spread 7 --story ./my-story.yaml --width 60`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := strconv.Atoi(args[0])
		if err != nil || page <= 0 {
			return fmt.Errorf("page must be a positive number, got %q", args[0])
		}

		book, err := openConfiguredStory()
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), bookview.PlainText(book.Spread(page), spreadWidth))
		return err
	},
}

func init() {
	spreadCmd.Flags().IntVarP(&spreadWidth, "width", "w", 72, "wrap page text at this width (0 disables wrapping)")
	rootCmd.AddCommand(spreadCmd)
}
