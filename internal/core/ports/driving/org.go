package driving

import (
	"context"

	"github.com/custodia-labs/orgopen/internal/core/domain"
)

// OrgService manages configured org connection entries.
type OrgService interface {
	// Add validates and stores org. The first org added becomes the default.
	Add(org domain.Org) error

	// Login authorizes in the browser and stores the resulting org.
	Login(ctx context.Context, req domain.LoginRequest) (*domain.Org, error)

	// List returns all configured orgs.
	List() ([]domain.Org, error)

	// Get returns the org stored under alias, or the default org when alias is empty.
	Get(alias string) (*domain.Org, error)

	// Remove deletes the org stored under alias.
	Remove(alias string) error

	// SetDefault makes alias the default org.
	SetDefault(alias string) error

	// Default returns the default alias, or "".
	Default() string
}
