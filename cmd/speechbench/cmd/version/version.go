package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"speechbench/internal/app/catalog"
)

var version = "v0.1.0"

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of speechbench",
	Long:  `All software has versions. This is speechbench's, followed by the built-in catalog revision.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printVersion(cmd)
		return nil
	},
}

func printVersion(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (catalog %s)\n", version, catalog.DefaultVersion)
}
