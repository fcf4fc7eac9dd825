package salesforce

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
	"github.com/custodia-labs/orgopen/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.OrgConnection = (*Client)(nil)

// queryResponse is the body of a query call.
type queryResponse struct {
	TotalSize int              `json:"totalSize"`
	Done      bool             `json:"done"`
	Records   []map[string]any `json:"records"`
}

// Client queries one org.
type Client struct {
	rest        *resty.Client
	rateLimiter *RateLimiter
	instanceURL string
	version     string

	// expireSession, when set, drops a rejected access token so the next
	// request refreshes it.
	expireSession func()
}

// NewClient creates a client for org that sends requests through httpClient.
// httpClient is expected to add the Authorization header.
// Failed requests are not retried, except that a rejected session is
// refreshed and the request sent once more when the client can refresh.
func NewClient(httpClient *http.Client, org domain.Org) *Client {
	rest := resty.NewWithClient(httpClient).
		SetBaseURL(org.BaseURL()).
		SetHeader("Accept", "application/json")

	return &Client{
		rest:        rest,
		rateLimiter: NewRateLimiter(),
		instanceURL: org.BaseURL(),
		version:     org.Version(),
	}
}

// InstanceURL returns the org base URL.
func (c *Client) InstanceURL() string {
	return c.instanceURL
}

// Query runs soql against the data API.
func (c *Client) Query(ctx context.Context, soql string) ([]domain.CatalogRecord, error) {
	return c.query(ctx, fmt.Sprintf("/services/data/v%s/query", c.version), soql, "")
}

// FindRecords runs q against the Tooling API.
func (c *Client) FindRecords(ctx context.Context, q domain.CatalogQuery) ([]domain.CatalogRecord, error) {
	return c.query(ctx, fmt.Sprintf("/services/data/v%s/tooling/query", c.version), q.SOQL(), q.ParentField)
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

func (c *Client) query(ctx context.Context, path, soql, parentField string) ([]domain.CatalogRecord, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	logger.Debug("query %s", soql)
	var out queryResponse
	resp, err := c.get(ctx, path, soql, &out)
	if err == nil && resp.StatusCode() == http.StatusUnauthorized && c.expireSession != nil {
		logger.Debug("session rejected, refreshing access token")
		c.expireSession()
		out = queryResponse{}
		resp, err = c.get(ctx, path, soql, &out)
	}
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, fmt.Errorf("%w: refresh token: %w", domain.ErrAuthRequired, err)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrOrgQuery, err)
	}
	c.rateLimiter.UpdateFromResponse(resp.RawResponse)

	if resp.IsError() {
		return nil, toAPIError(resp)
	}

	records := make([]domain.CatalogRecord, 0, len(out.Records))
	for _, row := range out.Records {
		rec := domain.CatalogRecord{ID: stringField(row, "Id")}
		if parentField != "" {
			rec.ParentID = stringField(row, parentField)
		}
		records = append(records, rec)
	}
	logger.Debug("query returned %d of %d rows", len(records), out.TotalSize)
	return records, nil
}

func (c *Client) get(ctx context.Context, path, soql string, out *queryResponse) (*resty.Response, error) {
	return c.rest.R().
		SetContext(ctx).
		SetQueryParam("q", soql).
		SetResult(out).
		Get(path)
}

func stringField(row map[string]any, name string) string {
	if s, ok := row[name].(string); ok {
		return s
	}
	return ""
}
