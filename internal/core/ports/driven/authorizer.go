package driven

import (
	"context"

	"github.com/custodia-labs/orgopen/internal/core/domain"
)

// Authorizer runs an interactive authorization and returns the resulting
// org entry. The entry is not stored.
type Authorizer interface {
	Authorize(ctx context.Context, req domain.LoginRequest) (*domain.Org, error)
}
