package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spigell/hh-scorer/internal/engine"
	"github.com/spigell/hh-scorer/internal/taxonomy"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the binary, scoring model and built-in taxonomy versions",
	Run: func(cmd *cobra.Command, _ []string) {
		taxVersion := "invalid"
		if tax, err := taxonomy.Default(); err == nil {
			taxVersion = tax.Version()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s (scoring model %s, taxonomy %s)\n",
			app, version, engine.ModelVersion, taxVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
