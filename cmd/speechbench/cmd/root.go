package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"speechbench/cmd/speechbench/cmd/catalog"
	"speechbench/cmd/speechbench/cmd/compare"
	"speechbench/cmd/speechbench/cmd/estimate"
	"speechbench/cmd/speechbench/cmd/leaderboard"
	"speechbench/cmd/speechbench/cmd/quiz"
	"speechbench/cmd/speechbench/cmd/recommend"
	"speechbench/cmd/speechbench/cmd/serve"
	"speechbench/cmd/speechbench/cmd/shared"
	"speechbench/cmd/speechbench/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "speechbench",
	Short: "Compare text-to-speech and speech-to-text providers",
	Long: `Compare text-to-speech and speech-to-text providers on quality, speed, price and features.
- Browse the leaderboard and the comparison matrix
- Estimate monthly costs for a given audio volume
- Answer three questions to get provider recommendations
- Serve everything as a website and JSON API with "speechbench serve"`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(leaderboard.Cmd)
	rootCmd.AddCommand(compare.Cmd)
	rootCmd.AddCommand(estimate.Cmd)
	rootCmd.AddCommand(recommend.Cmd)
	rootCmd.AddCommand(quiz.Cmd)
	rootCmd.AddCommand(catalog.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&shared.Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&shared.ConfigPath, "config", "c", "", "config file (default is $SPEECHBENCH_CONFIG or configs/speechbench.yaml)")
}
