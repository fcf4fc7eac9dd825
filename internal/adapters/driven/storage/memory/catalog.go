package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.OrgConnection = (*Catalog)(nil)

// Catalog is an in-memory implementation of driven.OrgConnection for testing.
// Lookups match on object name and the exact set of Where conditions.
type Catalog struct {
	mu          sync.RWMutex
	instanceURL string
	records     map[string][]domain.CatalogRecord
	queries     map[string][]domain.CatalogRecord
	failures    map[string]error
	calls       []string
}

// NewCatalog creates an empty catalog for the org at instanceURL.
func NewCatalog(instanceURL string) *Catalog {
	return &Catalog{
		instanceURL: strings.TrimRight(instanceURL, "/"),
		records:     make(map[string][]domain.CatalogRecord),
		queries:     make(map[string][]domain.CatalogRecord),
		failures:    make(map[string]error),
	}
}

// AddRecords registers records returned by FindRecords for object and where.
func (c *Catalog) AddRecords(object string, where map[string]string, records ...domain.CatalogRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := catalogKey(object, where)
	c.records[key] = append(c.records[key], records...)
}

// AddQueryResult registers records returned by Query for soql.
func (c *Catalog) AddQueryResult(soql string, records ...domain.CatalogRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries[soql] = append(c.queries[soql], records...)
}

// FailObject makes every lookup against object fail with err.
func (c *Catalog) FailObject(object string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[object] = err
}

// Calls returns the lookups made so far, in call order.
func (c *Catalog) Calls() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.calls...)
}

// Query returns the records registered for soql.
func (c *Catalog) Query(ctx context.Context, soql string) ([]domain.CatalogRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, soql)
	for object, err := range c.failures {
		if strings.Contains(soql, "FROM "+object+" ") {
			return nil, err
		}
	}
	return append([]domain.CatalogRecord(nil), c.queries[soql]...), nil
}

// FindRecords returns the records registered for q.Object and q.Where.
func (c *Catalog) FindRecords(ctx context.Context, q domain.CatalogQuery) ([]domain.CatalogRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	key := catalogKey(q.Object, q.Where)
	c.calls = append(c.calls, key)
	if err, ok := c.failures[q.Object]; ok {
		return nil, err
	}
	return append([]domain.CatalogRecord(nil), c.records[key]...), nil
}

// InstanceURL returns the org base URL.
func (c *Catalog) InstanceURL() string {
	return c.instanceURL
}

func catalogKey(object string, where map[string]string) string {
	conds := make([]string, 0, len(where))
	for field, value := range where {
		conds = append(conds, fmt.Sprintf("%s=%s", field, value))
	}
	sort.Strings(conds)
	return object + "?" + strings.Join(conds, "&")
}
