package file

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
)

// Ensure OrgStore implements the interface.
var _ driven.OrgStore = (*OrgStore)(nil)

const (
	orgsPrefix    = "orgs."
	defaultOrgKey = "default_org"

	keyInstanceURL  = "instance_url"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyClientID     = "client_id"
	keyAPIVersion   = "api_version"
)

var aliasPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// OrgStore keeps org entries as "orgs.<alias>.*" keys of a ConfigStore.
type OrgStore struct {
	config driven.ConfigStore
}

// NewOrgStore creates an OrgStore backed by config.
func NewOrgStore(config driven.ConfigStore) *OrgStore {
	return &OrgStore{config: config}
}

// Get returns the org stored under alias.
func (s *OrgStore) Get(alias string) (*domain.Org, error) {
	if err := validateAlias(alias); err != nil {
		return nil, err
	}
	prefix := orgsPrefix + alias + "."
	if len(s.config.Keys(prefix)) == 0 {
		return nil, fmt.Errorf("%w: org %q", domain.ErrNotFound, alias)
	}

	return &domain.Org{
		Alias:        alias,
		InstanceURL:  s.config.GetString(prefix + keyInstanceURL),
		AccessToken:  s.config.GetString(prefix + keyAccessToken),
		RefreshToken: s.config.GetString(prefix + keyRefreshToken),
		ClientID:     s.config.GetString(prefix + keyClientID),
		APIVersion:   s.config.GetString(prefix + keyAPIVersion),
	}, nil
}

// List returns all stored orgs sorted by alias.
func (s *OrgStore) List() ([]domain.Org, error) {
	seen := make(map[string]bool)
	for _, key := range s.config.Keys(orgsPrefix) {
		rest := strings.TrimPrefix(key, orgsPrefix)
		if idx := strings.Index(rest, "."); idx > 0 {
			seen[rest[:idx]] = true
		}
	}

	aliases := make([]string, 0, len(seen))
	for alias := range seen {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	orgs := make([]domain.Org, 0, len(aliases))
	for _, alias := range aliases {
		org, err := s.Get(alias)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, *org)
	}
	return orgs, nil
}

// Save creates or replaces the org stored under org.Alias.
func (s *OrgStore) Save(org domain.Org) error {
	if err := validateAlias(org.Alias); err != nil {
		return err
	}
	prefix := orgsPrefix + org.Alias + "."

	// Replace, don't merge: a stale refresh token must not survive
	if err := s.config.Delete(strings.TrimSuffix(prefix, ".")); err != nil {
		return err
	}

	values := []struct{ key, value string }{
		{keyInstanceURL, org.InstanceURL},
		{keyAccessToken, org.AccessToken},
		{keyRefreshToken, org.RefreshToken},
		{keyClientID, org.ClientID},
		{keyAPIVersion, org.APIVersion},
	}
	for _, v := range values {
		if v.value == "" {
			continue
		}
		if err := s.config.Set(prefix+v.key, v.value); err != nil {
			return fmt.Errorf("save org %q: %w", org.Alias, err)
		}
	}
	return nil
}

// Delete removes the org stored under alias.
func (s *OrgStore) Delete(alias string) error {
	if _, err := s.Get(alias); err != nil {
		return err
	}
	if err := s.config.Delete(orgsPrefix + alias); err != nil {
		return err
	}
	if s.DefaultAlias() == alias {
		return s.config.Delete(defaultOrgKey)
	}
	return nil
}

// DefaultAlias returns the alias used when none is given, or "".
func (s *OrgStore) DefaultAlias() string {
	return s.config.GetString(defaultOrgKey)
}

// SetDefaultAlias sets the alias used when none is given.
func (s *OrgStore) SetDefaultAlias(alias string) error {
	if _, err := s.Get(alias); err != nil {
		return err
	}
	return s.config.Set(defaultOrgKey, alias)
}

func validateAlias(alias string) error {
	if !aliasPattern.MatchString(alias) {
		return fmt.Errorf("%w: org alias %q must match %s", domain.ErrInvalidInput, alias, aliasPattern)
	}
	return nil
}
