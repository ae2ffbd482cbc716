package recommend

import (
	"fmt"

	"github.com/spf13/cobra"

	"speechbench/cmd/speechbench/cmd/shared"
	"speechbench/internal/app/recommend"
	"speechbench/internal/app/render"
)

var (
	useCase  string
	priority string
	volume   string
	topN     int
)

func init() {
	Cmd.Flags().StringVarP(&useCase, "use-case", "u", "", "voice-agent, content-creation, transcription, accessibility or budget")
	Cmd.Flags().StringVarP(&priority, "priority", "p", "", "quality, speed or price")
	Cmd.Flags().StringVar(&volume, "volume", "low", "low, medium or high")
	Cmd.Flags().IntVarP(&topN, "top", "n", 0, "number of recommendations, 1-3 (default from config)")

	Cmd.MarkFlagRequired("use-case")
	Cmd.MarkFlagRequired("priority")
}

// Cmd represents the recommend command
var Cmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend providers for a use case and priority",
	Long: `Recommend providers for a use case and priority without the interactive quiz.

- Scores are the same as the quiz: use case match, then the chosen benchmark
- Run "speechbench quiz" for the interactive version`,
	RunE: func(cmd *cobra.Command, args []string) error {
		answers := recommend.Answers{
			UseCase:  recommend.UseCase(useCase),
			Priority: recommend.Priority(priority),
			Volume:   recommend.Volume(volume),
		}
		if err := answers.Validate(); err != nil {
			return err
		}

		application, err := shared.LoadApplication()
		if err != nil {
			return err
		}

		n := topN
		if n == 0 {
			n = application.Config.Recommend.TopN
		}

		out := cmd.OutOrStdout()
		for i, r := range recommend.Recommend(application.Catalog, answers, n) {
			fmt.Fprintf(out, "%d. %s (%s) score %s\n   %s\n", i+1, r.Provider.Name, r.Provider.Modality, render.Score(r.Score), r.Provider.Description)
		}
		return nil
	},
}
