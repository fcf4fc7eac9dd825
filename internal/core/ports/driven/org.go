package driven

import (
	"context"

	"github.com/custodia-labs/orgopen/internal/core/domain"
)

// OrgConnection is a pre-authenticated connection to an org.
// All operations are read-only.
type OrgConnection interface {
	// Query runs a query-language statement against the org data API
	// and returns the matching records.
	Query(ctx context.Context, soql string) ([]domain.CatalogRecord, error)

	// FindRecords runs a field-equality lookup against the metadata catalog.
	FindRecords(ctx context.Context, q domain.CatalogQuery) ([]domain.CatalogRecord, error)

	// InstanceURL returns the org base URL without a trailing slash.
	InstanceURL() string
}

// ConnectionFactory builds connections from configured org entries.
type ConnectionFactory interface {
	// Connect returns a connection for org.
	// Returns ErrAuthRequired if the entry carries no usable credentials.
	Connect(ctx context.Context, org domain.Org) (OrgConnection, error)
}
