package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List supported metadata file types",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, _ []string) error {
	if openService == nil {
		return errors.New("open service not configured")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Supported metadata types:")
	fmt.Fprintln(cmd.OutOrStdout())
	for _, t := range openService.SupportedTypes() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-22s *.%s\n", t.String(), t.Token())
	}
	return nil
}
