package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
)

// Ensure Browser implements the interface.
var _ driven.Browser = (*Browser)(nil)

// Browser records opened URLs instead of launching anything.
type Browser struct {
	mu     sync.Mutex
	opened []string
	err    error
}

// NewBrowser creates a recording browser.
// If err is non-nil every Open call fails with it.
func NewBrowser(err error) *Browser {
	return &Browser{err: err}
}

// Open records url.
func (b *Browser) Open(_ context.Context, url string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.opened = append(b.opened, url)
	return nil
}

// Opened returns the URLs opened so far.
func (b *Browser) Opened() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.opened...)
}
