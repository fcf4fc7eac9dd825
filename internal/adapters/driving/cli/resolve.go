package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgopen/internal/core/ports/driving"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [path]",
	Short: "Print the setup page path for a metadata file",
	Long: `Resolve a metadata source file and print its setup page path relative to
the org base URL. Nothing is opened.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	resolveCmd.Flags().DurationVar(&timeout, "timeout", 0, "Give up after this long (0 waits indefinitely)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if openService == nil {
		return errors.New("open service not configured")
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	res, err := openService.Resolve(ctx, args[0], driving.OpenOptions{OrgAlias: orgAlias})
	if err != nil {
		return fail(cmd, err)
	}

	if jsonOutput {
		return writeResult(cmd, res)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.RelativeURL)
	return nil
}
