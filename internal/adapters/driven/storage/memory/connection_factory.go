package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
)

// Ensure ConnectionFactory implements the interface.
var _ driven.ConnectionFactory = (*ConnectionFactory)(nil)

// ConnectionFactory hands out a fixed connection and records which orgs asked.
type ConnectionFactory struct {
	mu        sync.Mutex
	conn      driven.OrgConnection
	err       error
	connected []string
}

// NewConnectionFactory creates a factory that returns conn, or err if set.
func NewConnectionFactory(conn driven.OrgConnection, err error) *ConnectionFactory {
	return &ConnectionFactory{conn: conn, err: err}
}

// Connect returns the fixed connection.
func (f *ConnectionFactory) Connect(_ context.Context, org domain.Org) (driven.OrgConnection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = append(f.connected, org.Alias)
	if f.err != nil {
		return nil, f.err
	}
	return f.conn, nil
}

// Connected returns the aliases passed to Connect so far.
func (f *ConnectionFactory) Connected() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.connected...)
}
