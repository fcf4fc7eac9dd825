package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgopen/internal/core/domain"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the default REST API version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "orgopen version %s (API v%s)\n", version, domain.DefaultAPIVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
