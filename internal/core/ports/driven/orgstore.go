package driven

import "github.com/custodia-labs/orgopen/internal/core/domain"

// OrgStore persists org connection entries.
type OrgStore interface {
	// Get returns the org stored under alias.
	// Returns ErrNotFound if no such alias exists.
	Get(alias string) (*domain.Org, error)

	// List returns all stored orgs sorted by alias.
	List() ([]domain.Org, error)

	// Save creates or replaces the org stored under org.Alias.
	Save(org domain.Org) error

	// Delete removes the org stored under alias.
	// Returns ErrNotFound if no such alias exists.
	Delete(alias string) error

	// DefaultAlias returns the alias used when none is given, or "".
	DefaultAlias() string

	// SetDefaultAlias sets the alias used when none is given.
	SetDefaultAlias(alias string) error
}
