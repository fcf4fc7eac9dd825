package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultAPIVersion is used when an org entry does not pin one.
const DefaultAPIVersion = "61.0"

// Org is a configured, pre-authenticated org connection entry.
type Org struct {
	// Alias is the local name of the org (e.g. "dev", "uat").
	Alias string `toml:"-" json:"alias"`
	// InstanceURL is the org base URL (e.g. "https://acme.my.salesforce.com").
	InstanceURL string `toml:"instance_url" json:"instanceUrl"`
	// AccessToken is the bearer token for API access.
	AccessToken string `toml:"access_token,omitempty" json:"-"`
	// RefreshToken is used to obtain new access tokens.
	RefreshToken string `toml:"refresh_token,omitempty" json:"-"`
	// ClientID is the connected app consumer key used for refresh.
	ClientID string `toml:"client_id,omitempty" json:"clientId,omitempty"`
	// APIVersion is the REST API version, without the "v" prefix.
	APIVersion string `toml:"api_version,omitempty" json:"apiVersion,omitempty"`
}

// Validate checks the entry has what a connection needs.
func (o *Org) Validate() error {
	if o.InstanceURL == "" {
		return fmt.Errorf("%w: org %q has no instance URL", ErrInvalidInput, o.Alias)
	}
	u, err := url.Parse(o.InstanceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: org %q has an invalid instance URL %q", ErrInvalidInput, o.Alias, o.InstanceURL)
	}
	if o.AccessToken == "" && o.RefreshToken == "" {
		return fmt.Errorf("%w: org %q has no access or refresh token", ErrAuthRequired, o.Alias)
	}
	return nil
}

// CanRefresh returns true if the entry holds what a token refresh needs.
func (o *Org) CanRefresh() bool {
	return o.RefreshToken != "" && o.ClientID != ""
}

// Version returns APIVersion or DefaultAPIVersion.
func (o *Org) Version() string {
	v := strings.TrimPrefix(o.APIVersion, "v")
	if v == "" {
		return DefaultAPIVersion
	}
	return v
}

// BaseURL returns InstanceURL without a trailing slash.
func (o *Org) BaseURL() string {
	return strings.TrimRight(o.InstanceURL, "/")
}
