package driving

import (
	"context"

	"github.com/custodia-labs/orgopen/internal/core/domain"
)

// OpenOptions control a single open invocation.
type OpenOptions struct {
	// OrgAlias selects the org; empty means the default org.
	OrgAlias string
	// URLOnly resolves the absolute URL without launching a browser.
	URLOnly bool
}

// OpenService resolves metadata source paths into org setup URLs.
type OpenService interface {
	// Resolve returns the setup path fragment for path, without the org base URL.
	Resolve(ctx context.Context, path string, opts OpenOptions) (*domain.Resolution, error)

	// Open resolves path, joins it with the org base URL and, unless
	// opts.URLOnly is set, launches the system browser at it.
	Open(ctx context.Context, path string, opts OpenOptions) (*domain.Resolution, error)

	// SupportedTypes returns the metadata types the service can resolve.
	SupportedTypes() []domain.MetadataType
}
