package estimate

import (
	"fmt"

	"github.com/spf13/cobra"

	"speechbench/cmd/speechbench/cmd/shared"
	"speechbench/internal/app/catalog"
	"speechbench/internal/app/estimator"
	"speechbench/internal/app/logging"
	"speechbench/internal/app/render"
)

var (
	hours    float64
	modality string
	strict   bool
	width    int
)

func init() {
	Cmd.Flags().Float64VarP(&hours, "hours", "H", 10, "monthly audio hours (1-1000)")
	Cmd.Flags().StringVarP(&modality, "modality", "m", "TTS", "TTS or STT")
	Cmd.Flags().BoolVar(&strict, "strict", false, "fail when a tier's unit cannot be converted for the modality")
	Cmd.Flags().IntVar(&width, "width", 40, "width of the longest bar")
}

// Cmd represents the estimate command
var Cmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate monthly cost per provider",
	Long: `Estimate monthly cost per provider from each provider's first pricing tier.

- TTS volume is converted at 15000 characters per audio hour
- PlayHT and anything above $20,000 are charted separately`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := catalog.ParseModality(modality)
		if err != nil {
			return err
		}

		cfg, err := shared.LoadConfig()
		if err != nil {
			return err
		}
		if strict {
			cfg.Estimator.StrictUnits = true
		}
		application, err := shared.LoadApplicationWith(cfg, logging.ForCLI(shared.Verbose))
		if err != nil {
			return err
		}

		result, err := application.Estimator.Estimate(hours, m)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Estimated monthly cost for %g hours of %s\n", result.Hours, result.Modality)
		if result.Modality == catalog.ModalityTTS {
			fmt.Fprintf(out, "(character pricing assumes %d characters per audio hour)\n", estimator.CharsPerAudioHour)
		}
		fmt.Fprintln(out)
		if err := render.NewBarChart(width, render.Currency).Render(out, render.CostSeries(result)); err != nil {
			return err
		}

		for _, e := range result.All() {
			if e.Unpriced {
				fmt.Fprintf(out, "\n* %s: %s\n", e.Name, e.Reason)
			}
		}
		return nil
	},
}
