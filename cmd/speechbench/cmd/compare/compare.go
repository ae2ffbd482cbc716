package compare

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"speechbench/cmd/speechbench/cmd/shared"
	"speechbench/internal/app/compare"
	"speechbench/internal/app/render"
)

var (
	modality        string
	differencesOnly bool
	exportPath      string
)

func init() {
	Cmd.Flags().StringVarP(&modality, "modality", "m", "ALL", "ALL, TTS or STT")
	Cmd.Flags().BoolVar(&differencesOnly, "differences-only", false, "highlight differing attributes (accepted, not yet applied)")
	Cmd.Flags().StringVarP(&exportPath, "export", "o", "", "write the matrix to an .xlsx file instead of printing it")
}

// Cmd represents the compare command
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Show the side-by-side provider comparison matrix",
	Long: `Show the side-by-side provider comparison matrix.

- TTS and STT show providers of exactly that type; BOTH providers appear under ALL
- --export writes an Excel workbook`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := compare.ParseFilter(modality)
		if err != nil {
			return err
		}

		application, err := shared.LoadApplication()
		if err != nil {
			return err
		}
		m := compare.Build(application.Catalog, compare.Filter{Modality: filter, DifferencesOnly: differencesOnly})

		if exportPath == "" {
			return render.MatrixTable(cmd.OutOrStdout(), m)
		}

		if !strings.EqualFold(filepath.Ext(exportPath), ".xlsx") {
			return fmt.Errorf("export path %q must end in .xlsx", exportPath)
		}
		if err := render.SaveMatrix(exportPath, m); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "export finished, exported file path: %v\n", exportPath)
		return nil
	},
}
