package catalog

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"speechbench/cmd/speechbench/cmd/shared"
	"speechbench/internal/app/catalog"
)

var outputFilePath string

func init() {
	exportCmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "write to this file instead of stdout")

	Cmd.AddCommand(exportCmd)
	Cmd.AddCommand(validateCmd)
}

// Cmd represents the catalog command
var Cmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the provider catalog",
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog as YAML",
	Long: `Write the active catalog as YAML.

- Edit the file and point catalog.path (or SPEECHBENCH_CATALOG_PATH) at it to use your own data`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := shared.LoadApplication()
		if err != nil {
			return err
		}

		if outputFilePath == "" {
			return catalog.Encode(cmd.OutOrStdout(), application.Catalog)
		}

		f, err := os.Create(outputFilePath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outputFilePath, err)
		}
		defer f.Close()

		if err := catalog.Encode(f, application.Catalog); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "export finished, exported file path: %v\n", outputFilePath)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d providers, version %s\n", args[0], c.Len(), c.Version())
		return nil
	},
}
