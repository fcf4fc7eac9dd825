package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/orgopen/internal/core/domain"
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage org connections",
	Long:  `Add, list, select, or remove the orgs that metadata files are resolved against.`,
}

var orgLoginCmd = &cobra.Command{
	Use:   "login [alias]",
	Short: "Store a connection to an org",
	Long: `Store a connection to an org under an alias.

By default the instance URL comes from --instance-url and the access token is
read from the terminal without echo. When --client-id is given a refresh token
is also requested, and expired access tokens are refreshed against the org's
token endpoint.

With --web the connection is authorized in the browser instead, using the
connected app named by --client-id. Its callback URL must be
http://localhost:<callback-port>/OauthRedirect.

Examples:
  orgopen org login dev --instance-url https://acme.my.salesforce.com
  orgopen org login uat --web --client-id 3MVG9... --login-url https://test.salesforce.com`,
	Args: cobra.ExactArgs(1),
	RunE: runOrgLogin,
}

var orgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List org connections",
	Args:  cobra.NoArgs,
	RunE:  runOrgList,
}

var orgDefaultCmd = &cobra.Command{
	Use:   "default [alias]",
	Short: "Set the default org",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrgDefault,
}

var orgRemoveCmd = &cobra.Command{
	Use:   "remove [alias]",
	Short: "Remove an org connection",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrgRemove,
}

// Login flags.
var (
	loginInstanceURL  string
	loginClientID     string
	loginAPIVersion   string
	loginWeb          bool
	loginURL          string
	loginCallbackPort int
	loginTimeout      time.Duration
)

func init() {
	orgLoginCmd.Flags().StringVarP(&loginInstanceURL, "instance-url", "u", "", "Org base URL, e.g. https://acme.my.salesforce.com")
	orgLoginCmd.Flags().StringVar(&loginClientID, "client-id", "", "Connected app consumer key, enables token refresh")
	orgLoginCmd.Flags().StringVar(&loginAPIVersion, "api-version", "", "REST API version (default "+domain.DefaultAPIVersion+")")
	orgLoginCmd.Flags().BoolVar(&loginWeb, "web", false, "Authorize in the browser")
	orgLoginCmd.Flags().StringVar(&loginURL, "login-url", domain.DefaultLoginURL, "Authorization host for --web")
	orgLoginCmd.Flags().IntVar(&loginCallbackPort, "callback-port", domain.DefaultCallbackPort, "Loopback port for the --web redirect")
	orgLoginCmd.Flags().DurationVar(&loginTimeout, "timeout", 5*time.Minute, "How long to wait for --web authorization")

	orgCmd.AddCommand(orgLoginCmd)
	orgCmd.AddCommand(orgListCmd)
	orgCmd.AddCommand(orgDefaultCmd)
	orgCmd.AddCommand(orgRemoveCmd)
	rootCmd.AddCommand(orgCmd)
}

func runOrgLogin(cmd *cobra.Command, args []string) error {
	if orgService == nil {
		return errors.New("org service not configured")
	}
	if loginWeb {
		return runOrgLoginWeb(cmd, args[0])
	}
	if loginInstanceURL == "" {
		return errors.New("--instance-url is required unless --web is set")
	}

	org := domain.Org{
		Alias:       args[0],
		InstanceURL: loginInstanceURL,
		ClientID:    loginClientID,
		APIVersion:  loginAPIVersion,
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Access token: ")
	org.AccessToken = readPassword(cmd.InOrStdin())
	fmt.Fprintln(cmd.ErrOrStderr())

	if org.ClientID != "" {
		fmt.Fprint(cmd.ErrOrStderr(), "Refresh token (optional): ")
		org.RefreshToken = readPassword(cmd.InOrStdin())
		fmt.Fprintln(cmd.ErrOrStderr())
	}

	if err := orgService.Add(org); err != nil {
		return fmt.Errorf("failed to save org: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved org %s (%s)\n", org.Alias, org.InstanceURL)
	if orgService.Default() == org.Alias {
		fmt.Fprintln(cmd.OutOrStdout(), "This is the default org.")
	}
	return nil
}

func runOrgLoginWeb(cmd *cobra.Command, alias string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()

	fmt.Fprintln(cmd.ErrOrStderr(), "Opening the browser to authorize orgopen...")
	org, err := orgService.Login(ctx, domain.LoginRequest{
		Alias:        alias,
		LoginURL:     loginURL,
		ClientID:     loginClientID,
		CallbackPort: loginCallbackPort,
	})
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved org %s (%s)\n", org.Alias, org.InstanceURL)
	if orgService.Default() == org.Alias {
		fmt.Fprintln(cmd.OutOrStdout(), "This is the default org.")
	}
	return nil
}

func runOrgList(cmd *cobra.Command, _ []string) error {
	if orgService == nil {
		return errors.New("org service not configured")
	}

	orgs, err := orgService.List()
	if err != nil {
		return fmt.Errorf("failed to list orgs: %w", err)
	}

	if len(orgs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No orgs configured. Add one with: orgopen org login <alias> --instance-url <url>")
		return nil
	}

	def := orgService.Default()
	fmt.Fprintln(cmd.OutOrStdout(), "Orgs:")
	fmt.Fprintln(cmd.OutOrStdout())
	for i := range orgs {
		marker := " "
		if orgs[i].Alias == def {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-16s %s\n", marker, orgs[i].Alias, orgs[i].InstanceURL)
		if orgs[i].CanRefresh() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-16s refresh enabled (client %s)\n", "", orgs[i].ClientID)
		}
	}
	return nil
}

func runOrgDefault(cmd *cobra.Command, args []string) error {
	if orgService == nil {
		return errors.New("org service not configured")
	}

	if err := orgService.SetDefault(args[0]); err != nil {
		return fmt.Errorf("failed to set default org: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Default org set to %s\n", args[0])
	return nil
}

func runOrgRemove(cmd *cobra.Command, args []string) error {
	if orgService == nil {
		return errors.New("org service not configured")
	}

	if err := orgService.Remove(args[0]); err != nil {
		return fmt.Errorf("failed to remove org: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed org %s\n", args[0])
	return nil
}

func readPassword(in io.Reader) string {
	// Try to read without echo
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input, one byte at a time so later prompts
	// still see the rest of in.
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				break
			}
			line = append(line, buf[0])
		}
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(string(line))
}
