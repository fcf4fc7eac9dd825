package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/orgopen/internal/adapters/driven/config/file"
	"github.com/custodia-labs/orgopen/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/services"
)

const testInstanceURL = "https://acme.my.salesforce.com"

// testEnv holds the in-memory adapters behind the injected services.
type testEnv struct {
	catalog *memory.Catalog
	browser *memory.Browser
	auth    *memory.Authorizer
	orgs    *services.OrgService
}

// setupTestServices injects services backed by memory adapters with one
// default org "dev". The returned function restores the previous services.
func setupTestServices(t *testing.T) (*testEnv, func()) {
	t.Helper()
	t.Setenv(services.EnvInstanceURL, "")

	oldOpen, oldOrgs := openService, orgService

	auth := memory.NewAuthorizer(domain.Org{
		InstanceURL:  "https://web.my.salesforce.com",
		AccessToken:  "web-access",
		RefreshToken: "web-refresh",
		ClientID:     "key",
	}, nil)
	orgs := services.NewOrgService(file.NewOrgStore(memory.NewConfigStore()), auth)
	require.NoError(t, orgs.Add(domain.Org{Alias: "dev", InstanceURL: testInstanceURL, AccessToken: "tok"}))

	env := &testEnv{
		catalog: memory.NewCatalog(testInstanceURL),
		browser: memory.NewBrowser(nil),
		auth:    auth,
		orgs:    orgs,
	}
	SetServices(Services{
		Open: services.NewOpenService(orgs, memory.NewConnectionFactory(env.catalog, nil), env.browser),
		Orgs: orgs,
	})
	resetFlags()
	rootCmd.SetErr(new(bytes.Buffer))

	return env, func() {
		openService, orgService = oldOpen, oldOrgs
		resetFlags()
	}
}

// resetFlags restores every flag to its default. Cobra keeps flag values
// and their changed state between executions of the same command tree.
func resetFlags() {
	resetCommandFlags(rootCmd)
}

func resetCommandFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetCommandFlags(c)
	}
}

// captureStdout runs fn with os.Stdout replaced by a pipe and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}
