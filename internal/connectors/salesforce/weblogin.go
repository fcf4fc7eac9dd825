package salesforce

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/orgopen/internal/adapters/driven/oauth"
	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
	"github.com/custodia-labs/orgopen/internal/logger"
)

// Ensure WebLogin implements the interface.
var _ driven.Authorizer = (*WebLogin)(nil)

// AuthorizePath is the OAuth authorization endpoint, relative to the login URL.
const AuthorizePath = "/services/oauth2/authorize"

// WebLogin runs the OAuth web server flow with PKCE: the user approves
// access in the browser and the code is exchanged for tokens.
type WebLogin struct {
	browser driven.Browser
}

// NewWebLogin creates a web login that sends the user to browser.
func NewWebLogin(browser driven.Browser) *WebLogin {
	return &WebLogin{browser: browser}
}

// OAuthConfig returns the web server flow configuration for a login host.
func OAuthConfig(loginURL, clientID, redirectURI string) *oauth2.Config {
	base := strings.TrimRight(loginURL, "/")
	return &oauth2.Config{
		ClientID:    clientID,
		RedirectURL: redirectURI,
		Scopes:      []string{"api", "refresh_token"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   base + AuthorizePath,
			TokenURL:  base + TokenPath,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// Authorize opens the authorization page and waits for the redirect.
func (l *WebLogin) Authorize(ctx context.Context, req domain.LoginRequest) (*domain.Org, error) {
	state := uuid.NewString()
	server := oauth.NewCallbackServer(req.CallbackPort, state)
	if err := server.Start(); err != nil {
		return nil, err
	}
	defer func() { _ = server.Stop() }()

	cfg := OAuthConfig(req.AuthorizationHost(), req.ClientID, server.RedirectURI())
	verifier := oauth2.GenerateVerifier()
	authURL := cfg.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))

	logger.Info("waiting for authorization on %s", server.RedirectURI())
	if err := l.browser.Open(ctx, authURL); err != nil {
		return nil, err
	}

	code, err := server.WaitForCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthRequired, err)
	}

	token, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, fmt.Errorf("%w: exchange code: %w", domain.ErrAuthRequired, err)
		}
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	return OrgFromToken(req, token)
}

// OrgFromToken builds an org entry from a token response. The instance URL
// comes from the response since it may differ from the login host.
func OrgFromToken(req domain.LoginRequest, token *oauth2.Token) (*domain.Org, error) {
	instanceURL, _ := token.Extra("instance_url").(string)
	if instanceURL == "" {
		return nil, fmt.Errorf("%w: token response has no instance_url", domain.ErrAuthRequired)
	}
	return &domain.Org{
		Alias:        req.Alias,
		InstanceURL:  instanceURL,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ClientID:     req.ClientID,
	}, nil
}
