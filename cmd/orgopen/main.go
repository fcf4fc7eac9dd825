// Command orgopen opens metadata source files in the org setup UI.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/orgopen/internal/adapters/driven/browser"
	"github.com/custodia-labs/orgopen/internal/adapters/driven/config/file"
	"github.com/custodia-labs/orgopen/internal/adapters/driving/cli"
	"github.com/custodia-labs/orgopen/internal/connectors/salesforce"
	"github.com/custodia-labs/orgopen/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	systemBrowser := browser.New()
	orgs := services.NewOrgService(file.NewOrgStore(configStore), salesforce.NewWebLogin(systemBrowser))

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Open: services.NewOpenService(orgs, salesforce.NewConnectionFactory(0), systemBrowser),
		Orgs: orgs,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
