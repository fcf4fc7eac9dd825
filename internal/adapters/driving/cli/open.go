package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgopen/internal/core/ports/driving"
)

var openCmd = &cobra.Command{
	Use:   "open [path]",
	Short: "Open a metadata file's setup page in the browser",
	Long: `Resolve a metadata source file to its setup page in the org and open it in
the default browser. With --url-only the URL is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

// Open flags, shared with the root command.
var (
	urlOnly    bool
	jsonOutput bool
	timeout    time.Duration
)

func init() {
	addOpenFlags(openCmd)
	rootCmd.AddCommand(openCmd)
}

func addOpenFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&urlOnly, "url-only", "r", false, "Print the URL without opening a browser")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Give up after this long (0 waits indefinitely)")
}

func runOpen(cmd *cobra.Command, args []string) error {
	if openService == nil {
		return errors.New("open service not configured")
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	res, err := openService.Open(ctx, args[0], driving.OpenOptions{
		OrgAlias: orgAlias,
		URLOnly:  urlOnly,
	})
	if err != nil {
		return fail(cmd, err)
	}

	if jsonOutput {
		return writeResult(cmd, res)
	}
	if res.Opened {
		fmt.Fprintf(cmd.OutOrStdout(), "Opening %s\n", res.URL)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.URL)
	return nil
}

// commandContext applies --timeout to the command's context.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}
