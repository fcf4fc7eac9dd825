package salesforce

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

const (
	// ProactiveRate is the request rate allowed per second.
	ProactiveRate = 10

	// Burst is the number of requests allowed at once. A lookup fans out
	// to at most two concurrent queries.
	Burst = 2

	// MinBuffer is the remaining daily allocation below which requests fail.
	MinBuffer = 10

	// HeaderLimitInfo reports daily API usage as "api-usage=<used>/<limit>".
	HeaderLimitInfo = "Sforce-Limit-Info"
)

// RateLimiter throttles requests and tracks the org's daily API allocation.
type RateLimiter struct {
	mu        sync.Mutex
	used      int
	limit     int
	bucket    *rate.Limiter
	minBuffer int
}

// NewRateLimiter creates a new rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket:    rate.NewLimiter(rate.Limit(ProactiveRate), Burst),
		minBuffer: MinBuffer,
	}
}

// Wait blocks until it's safe to make a request.
// It fails once the daily allocation is nearly used up, since it does not
// reset within the lifetime of a command.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	used, limit := r.used, r.limit
	r.mu.Unlock()

	if limit > 0 && limit-used < r.minBuffer {
		return &LimitError{Used: used, Limit: limit}
	}
	return nil
}

// UpdateFromResponse updates usage from the Sforce-Limit-Info header.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}
	used, limit, ok := parseLimitInfo(resp.Header.Get(HeaderLimitInfo))
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.used = used
	r.limit = limit
}

// Usage returns the last reported used and limit values.
func (r *RateLimiter) Usage() (used, limit int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.used, r.limit
}

// parseLimitInfo parses "api-usage=25/15000". Other comma separated
// entries are ignored.
func parseLimitInfo(header string) (used, limit int, ok bool) {
	for _, part := range strings.Split(header, ",") {
		value, found := strings.CutPrefix(strings.TrimSpace(part), "api-usage=")
		if !found {
			continue
		}
		u, l, found := strings.Cut(value, "/")
		if !found {
			return 0, 0, false
		}
		var err error
		if used, err = strconv.Atoi(u); err != nil {
			return 0, 0, false
		}
		if limit, err = strconv.Atoi(l); err != nil {
			return 0, 0, false
		}
		return used, limit, true
	}
	return 0, 0, false
}
