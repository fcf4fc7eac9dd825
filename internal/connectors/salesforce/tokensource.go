package salesforce

import (
	"context"
	"sync"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/orgopen/internal/core/domain"
)

// TokenPath is the OAuth token endpoint, relative to the instance URL.
const TokenPath = "/services/oauth2/token"

// NewTokenSource returns a token source for org.
//
// An org with a refresh token and client id gets a *SessionSource whose
// token endpoint lives on the org's own instance. Otherwise the access token
// is used as is.
func NewTokenSource(ctx context.Context, org domain.Org) oauth2.TokenSource {
	token := &oauth2.Token{
		AccessToken:  org.AccessToken,
		RefreshToken: org.RefreshToken,
		TokenType:    "Bearer",
	}
	if !org.CanRefresh() {
		return oauth2.StaticTokenSource(token)
	}

	return &SessionSource{
		ctx: ctx,
		cfg: &oauth2.Config{
			ClientID: org.ClientID,
			Endpoint: oauth2.Endpoint{
				TokenURL:  org.BaseURL() + TokenPath,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		token: token,
	}
}

// SessionSource hands out the stored access token until the org rejects it.
//
// Stored tokens carry no expiry, so oauth2 would treat them as valid forever.
// Expire drops the access token and the next Token call refreshes it.
// An empty access token refreshes on first use.
type SessionSource struct {
	mu    sync.Mutex
	ctx   context.Context
	cfg   *oauth2.Config
	token *oauth2.Token
}

// Token implements oauth2.TokenSource.
func (s *SessionSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token.Valid() {
		return s.token, nil
	}

	stale := &oauth2.Token{RefreshToken: s.token.RefreshToken}
	fresh, err := s.cfg.TokenSource(s.ctx, stale).Token()
	if err != nil {
		return nil, err
	}
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = s.token.RefreshToken
	}
	s.token = fresh
	return fresh, nil
}

// Expire forces the next Token call to refresh.
func (s *SessionSource) Expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = &oauth2.Token{RefreshToken: s.token.RefreshToken}
}
