package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/orgopen/internal/core/domain"
)

func TestCatalog_FindRecords(t *testing.T) {
	c := NewCatalog("https://acme.my.salesforce.com/")
	c.AddRecords("FlowDefinition", map[string]string{"DeveloperName": "MyFlow"}, domain.CatalogRecord{ID: "300xx"})

	records, err := c.FindRecords(context.Background(), domain.CatalogQuery{
		Object: "FlowDefinition",
		Where:  map[string]string{"DeveloperName": "MyFlow"},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "300xx", records[0].ID)
	assert.Equal(t, "https://acme.my.salesforce.com", c.InstanceURL())
	assert.Equal(t, []string{"FlowDefinition?DeveloperName=MyFlow"}, c.Calls())
}

func TestCatalog_FindRecords_WhereOrderIndependent(t *testing.T) {
	c := NewCatalog("https://x")
	c.AddRecords("CustomField", map[string]string{"DeveloperName": "F", "TableEnumOrId": "Account"}, domain.CatalogRecord{ID: "00N"})

	records, err := c.FindRecords(context.Background(), domain.CatalogQuery{
		Object: "CustomField",
		Where:  map[string]string{"TableEnumOrId": "Account", "DeveloperName": "F"},
	})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCatalog_Failures(t *testing.T) {
	c := NewCatalog("https://x")
	boom := errors.New("boom")
	c.FailObject("ProcessDefinition", boom)
	c.FailObject("Layout", boom)

	_, err := c.Query(context.Background(), "SELECT Id FROM ProcessDefinition WHERE Type = 'Approval'")
	assert.ErrorIs(t, err, boom)

	_, err = c.FindRecords(context.Background(), domain.CatalogQuery{Object: "Layout"})
	assert.ErrorIs(t, err, boom)
}

func TestCatalog_CancelledContext(t *testing.T) {
	c := NewCatalog("https://x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Query(ctx, "SELECT Id FROM Profile")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, c.Calls())
}

func TestBrowser_Records(t *testing.T) {
	b := NewBrowser(nil)
	require.NoError(t, b.Open(context.Background(), "https://x/a"))
	assert.Equal(t, []string{"https://x/a"}, b.Opened())

	failing := NewBrowser(errors.New("no display"))
	assert.Error(t, failing.Open(context.Background(), "https://x/a"))
	assert.Empty(t, failing.Opened())
}
