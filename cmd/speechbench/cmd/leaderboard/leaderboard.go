package leaderboard

import (
	"github.com/spf13/cobra"

	"speechbench/cmd/speechbench/cmd/shared"
	"speechbench/internal/app/leaderboard"
	"speechbench/internal/app/render"
)

var (
	limit int
	chart bool
)

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of providers to show, 1-10 (default from config)")
	Cmd.Flags().BoolVar(&chart, "chart", false, "draw stacked score bars instead of a table")
}

// Cmd represents the leaderboard command
var Cmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Rank providers by composite benchmark score",
	Long: `Rank providers by the sum of their quality, speed, features and price scores.

- Ties keep catalog order
- At most 10 providers are shown`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := shared.LoadApplication()
		if err != nil {
			return err
		}

		n := limit
		if n == 0 {
			n = application.Config.Leaderboard.Limit
		}
		entries := leaderboard.Rank(application.Catalog, n)

		if chart {
			return render.NewStackedBars(2).Render(cmd.OutOrStdout(), render.LeaderboardSeries(entries))
		}
		return render.LeaderboardTable(cmd.OutOrStdout(), entries)
	},
}
