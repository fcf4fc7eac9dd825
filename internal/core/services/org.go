package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
	"github.com/custodia-labs/orgopen/internal/core/ports/driving"
)

// Ensure OrgService implements the interface.
var _ driving.OrgService = (*OrgService)(nil)

// Environment variables that describe an org without touching the config file.
const (
	EnvInstanceURL = "ORGOPEN_INSTANCE_URL"
	EnvAccessToken = "ORGOPEN_ACCESS_TOKEN"
	envOrgAlias    = "env"
)

// lookupEnv is swapped in tests.
var lookupEnv = os.LookupEnv

// OrgService manages configured org connection entries.
type OrgService struct {
	store      driven.OrgStore
	authorizer driven.Authorizer
}

// NewOrgService creates a new org service.
// authorizer may be nil, in which case Login is unavailable.
func NewOrgService(store driven.OrgStore, authorizer driven.Authorizer) *OrgService {
	return &OrgService{store: store, authorizer: authorizer}
}

// Add validates and stores org. The first org added becomes the default.
func (s *OrgService) Add(org domain.Org) error {
	if err := org.Validate(); err != nil {
		return err
	}
	if err := s.store.Save(org); err != nil {
		return err
	}
	if s.store.DefaultAlias() == "" {
		return s.store.SetDefaultAlias(org.Alias)
	}
	return nil
}

// Login runs the browser authorization for req and stores the org it yields.
func (s *OrgService) Login(ctx context.Context, req domain.LoginRequest) (*domain.Org, error) {
	if s.authorizer == nil {
		return nil, errors.New("browser login not configured")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	org, err := s.authorizer.Authorize(ctx, req)
	if err != nil {
		return nil, err
	}
	org.Alias = req.Alias
	if err := s.Add(*org); err != nil {
		return nil, err
	}
	return org, nil
}

// List returns all configured orgs.
func (s *OrgService) List() ([]domain.Org, error) {
	return s.store.List()
}

// Get returns the org stored under alias. An empty alias selects the org
// described by the environment, then the default org.
func (s *OrgService) Get(alias string) (*domain.Org, error) {
	if alias == "" {
		if org := envOrg(); org != nil {
			return org, nil
		}
		alias = s.store.DefaultAlias()
	}
	if alias == "" {
		return nil, fmt.Errorf("%w: no default org, run 'orgopen org login <alias>' or pass --org",
			domain.ErrAuthRequired)
	}

	org, err := s.store.Get(alias)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: org %q is not configured", domain.ErrAuthRequired, alias)
	}
	return org, err
}

// Remove deletes the org stored under alias.
func (s *OrgService) Remove(alias string) error {
	return s.store.Delete(alias)
}

// SetDefault makes alias the default org.
func (s *OrgService) SetDefault(alias string) error {
	return s.store.SetDefaultAlias(alias)
}

// Default returns the default alias, or "".
func (s *OrgService) Default() string {
	return s.store.DefaultAlias()
}

func envOrg() *domain.Org {
	instanceURL, ok := lookupEnv(EnvInstanceURL)
	if !ok || instanceURL == "" {
		return nil
	}
	token, _ := lookupEnv(EnvAccessToken)
	return &domain.Org{Alias: envOrgAlias, InstanceURL: instanceURL, AccessToken: token}
}
