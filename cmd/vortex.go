package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/storybook/internal/presentation"
	"github.com/zjrosen/storybook/internal/vortex"
)

var (
	vortexSecondary bool
	vortexSeed      int64
	vortexFormat    string
)

var vortexCmd = &cobra.Command{
	Use:   "vortex",
	Short: "Print the vortex spinner layout",
	Long: `Print every glyph placement of the vortex spiral drawn on the loading
screen. The same seed always produces the same layout.

Examples:
  # Primary spiral as a table
  storybook vortex

  # Counter-rotating spiral with a fixed seed as JSON
  storybook vortex --secondary --seed 42 --format json

  # Count glyphs per tendril with jq
  storybook vortex --format json | jq 'group_by(.tendril) | map(length)'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := presentation.ParseFormat(vortexFormat)
		if err != nil {
			return err
		}

		params := vortex.Primary()
		if vortexSecondary {
			params = vortex.Secondary()
		}
		seed := cfg.Vortex.Seed
		if cmd.Flags().Changed("seed") {
			seed = vortexSeed
		}

		placements, err := vortex.Generate(params.WithSeed(seed))
		if err != nil {
			return fmt.Errorf("generating vortex: %w", err)
		}
		return presentation.NewFormatter(cmd.OutOrStdout(), format).FormatPlacements(placements)
	},
}

func init() {
	vortexCmd.Flags().BoolVar(&vortexSecondary, "secondary", false, "lay out the secondary (counter-rotating) spiral")
	vortexCmd.Flags().Int64Var(&vortexSeed, "seed", 0, "layout seed (default: vortex.seed from config)")
	vortexCmd.Flags().StringVarP(&vortexFormat, "format", "f", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(vortexCmd)
}
