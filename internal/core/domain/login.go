package domain

import "fmt"

// Defaults for the browser login flow.
const (
	DefaultLoginURL     = "https://login.salesforce.com"
	DefaultCallbackPort = 1717
)

// LoginRequest describes a browser based authorization for a new org entry.
type LoginRequest struct {
	// Alias is the name the org is stored under.
	Alias string
	// LoginURL is the authorization host (login, test or a My Domain URL).
	LoginURL string
	// ClientID is the connected app consumer key.
	ClientID string
	// CallbackPort is the loopback port the redirect is received on.
	// Zero picks a free port.
	CallbackPort int
}

// Validate checks the request is complete.
func (r *LoginRequest) Validate() error {
	if r.Alias == "" {
		return fmt.Errorf("%w: org alias is required", ErrInvalidInput)
	}
	if r.ClientID == "" {
		return fmt.Errorf("%w: a connected app client id is required for browser login", ErrInvalidInput)
	}
	if r.CallbackPort < 0 || r.CallbackPort > 65535 {
		return fmt.Errorf("%w: callback port %d out of range", ErrInvalidInput, r.CallbackPort)
	}
	return nil
}

// AuthorizationHost returns LoginURL, or DefaultLoginURL when unset.
func (r *LoginRequest) AuthorizationHost() string {
	if r.LoginURL == "" {
		return DefaultLoginURL
	}
	return r.LoginURL
}
