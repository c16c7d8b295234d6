package cmd

import (
	"errors"
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/zjrosen/storybook/internal/presentation"
)

// errIssuesFound makes the check command exit non-zero.
var errIssuesFound = errors.New("story has authoring issues")

var checkFormat string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint a story for authoring mistakes",
	Long: `Report choices that lead to missing pages, pages no choice can reach,
and a start page that does not exist. Cycles and dead ends are allowed.

Exits non-zero when any issue is found, so it can gate CI.

Examples:
  storybook check --story ./my-story.yaml
  storybook check --format json | jq '.[].page'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := presentation.ParseFormat(checkFormat)
		if err != nil {
			return err
		}
		book, err := openConfiguredStory()
		if err != nil {
			return err
		}

		issues := book.Check()
		out := cmd.OutOrStdout()
		if err := presentation.NewFormatter(out, format).FormatIssues(presentation.FromIssues(issues)); err != nil {
			return err
		}
		if len(issues) == 0 {
			return nil
		}
		if format == presentation.FormatText {
			term := termenv.NewOutput(out)
			summary := fmt.Sprintf("%d issue(s) in %q", len(issues), book.Title)
			_, _ = fmt.Fprintln(out, term.String(summary).Foreground(term.Color("1")).Bold())
		}
		return errIssuesFound
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(checkCmd)
}
