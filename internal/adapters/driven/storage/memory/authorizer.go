package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
)

// Ensure Authorizer implements the interface.
var _ driven.Authorizer = (*Authorizer)(nil)

// Authorizer returns a fixed org and records the requests it saw.
type Authorizer struct {
	mu       sync.Mutex
	org      domain.Org
	err      error
	requests []domain.LoginRequest
}

// NewAuthorizer creates an authorizer that yields org, or err if set.
func NewAuthorizer(org domain.Org, err error) *Authorizer {
	return &Authorizer{org: org, err: err}
}

// Authorize returns a copy of the fixed org.
func (a *Authorizer) Authorize(_ context.Context, req domain.LoginRequest) (*domain.Org, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = append(a.requests, req)
	if a.err != nil {
		return nil, a.err
	}
	org := a.org
	return &org, nil
}

// Requests returns the requests passed to Authorize so far.
func (a *Authorizer) Requests() []domain.LoginRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.LoginRequest(nil), a.requests...)
}
