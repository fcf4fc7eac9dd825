package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgopen/internal/core/ports/driving"
	"github.com/custodia-labs/orgopen/internal/logger"
)

// version is set by SetVersion, normally from build flags.
var version = "dev"

// Global flags.
var (
	verbose  bool
	orgAlias string
)

// Services injected by main.
var (
	openService driving.OpenService
	orgService  driving.OrgService
)

// Services holds the services the commands call.
type Services struct {
	Open driving.OpenService
	Orgs driving.OrgService
}

// SetServices injects the services used by all commands.
func SetServices(s Services) {
	openService = s.Open
	orgService = s.Orgs
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "orgopen [path]",
	Short: "Open metadata source files in the org setup UI",
	Long: `orgopen resolves a local metadata source file (flow, field, validation rule,
Apex class, page layout, ...) to its setup page in a connected org and opens
it in the default browser.

  orgopen force-app/main/default/flows/MyFlow.flow-meta.xml
  orgopen open -r force-app/main/default/classes/InvoiceService.cls

Org connections are managed with "orgopen org login".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetField("run", uuid.NewString())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runOpen(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log lookups to stderr")
	rootCmd.PersistentFlags().StringVarP(&orgAlias, "org", "o", "", "Org alias (defaults to the configured default org)")
	addOpenFlags(rootCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
