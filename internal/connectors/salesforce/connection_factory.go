package salesforce

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
)

// Ensure ConnectionFactory implements the interface.
var _ driven.ConnectionFactory = (*ConnectionFactory)(nil)

// ConnectionFactory opens REST connections to configured orgs.
type ConnectionFactory struct {
	timeout time.Duration
}

// NewConnectionFactory creates a factory whose clients time out after
// timeout. Zero means no timeout.
func NewConnectionFactory(timeout time.Duration) *ConnectionFactory {
	return &ConnectionFactory{timeout: timeout}
}

// Connect validates org and returns a client for it.
func (f *ConnectionFactory) Connect(ctx context.Context, org domain.Org) (driven.OrgConnection, error) {
	if err := org.Validate(); err != nil {
		return nil, err
	}

	ts := NewTokenSource(ctx, org)
	hc := oauth2.NewClient(ctx, ts)
	if f.timeout > 0 {
		hc.Timeout = f.timeout
	}

	client := NewClient(hc, org)
	if session, ok := ts.(*SessionSource); ok {
		client.expireSession = session.Expire
	}
	return client, nil
}
