package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/orgopen/internal/adapters/driven/config/file"
	"github.com/custodia-labs/orgopen/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driving"
)

type openFixture struct {
	svc     *OpenService
	catalog *memory.Catalog
	factory *memory.ConnectionFactory
	browser *memory.Browser
}

func newOpenFixture(t *testing.T, browserErr error) *openFixture {
	t.Helper()
	noEnv(t)
	orgs := NewOrgService(file.NewOrgStore(memory.NewConfigStore()), nil)
	require.NoError(t, orgs.Add(domain.Org{Alias: "dev", InstanceURL: testInstanceURL + "/", AccessToken: "tok"}))

	catalog := memory.NewCatalog(testInstanceURL)
	factory := memory.NewConnectionFactory(catalog, nil)
	browser := memory.NewBrowser(browserErr)

	return &openFixture{
		svc:     NewOpenService(orgs, factory, browser),
		catalog: catalog,
		factory: factory,
		browser: browser,
	}
}

func TestOpenService_Open_Flow(t *testing.T) {
	f := newOpenFixture(t, nil)
	f.catalog.AddRecords("FlowDefinition", where("DeveloperName", "MyFlow"), domain.CatalogRecord{ID: "300000000000001"})

	res, err := f.svc.Open(context.Background(), "MyFlow.flow-meta.xml", driving.OpenOptions{})

	require.NoError(t, err)
	want := testInstanceURL + "/lightning/setup/Flows/page?address=%2F300000000000001"
	assert.Equal(t, want, res.URL)
	assert.Equal(t, "lightning/setup/Flows/page?address=%2F300000000000001", res.RelativeURL)
	assert.Equal(t, "Flow", res.Type)
	assert.True(t, res.Opened)
	assert.Equal(t, []string{want}, f.browser.Opened())
	assert.Equal(t, []string{"dev"}, f.factory.Connected())
}

func TestOpenService_Open_Field(t *testing.T) {
	f := newOpenFixture(t, nil)
	f.catalog.AddRecords("CustomField", where("DeveloperName", "MyField", "TableEnumOrId", "Account"),
		domain.CatalogRecord{ID: "00N000000000001"})

	res, err := f.svc.Open(context.Background(),
		"force-app/main/default/objects/Account/fields/MyField__c.field-meta.xml", driving.OpenOptions{})

	require.NoError(t, err)
	assert.Equal(t,
		testInstanceURL+"/lightning/setup/ObjectManager/Account/FieldsAndRelationships/00N000000000001/view",
		res.URL)
}

func TestOpenService_Open_URLOnly(t *testing.T) {
	f := newOpenFixture(t, nil)
	f.catalog.AddRecords("ApexClass", where("Name", "Svc"), domain.CatalogRecord{ID: "01p01"})

	res, err := f.svc.Open(context.Background(), "Svc.cls", driving.OpenOptions{URLOnly: true})

	require.NoError(t, err)
	assert.False(t, res.Opened)
	assert.Equal(t, testInstanceURL+"/lightning/setup/ApexClasses/page?address=%2F01p01", res.URL)
	assert.Empty(t, f.browser.Opened())
}

func TestOpenService_Open_BrowserFailure(t *testing.T) {
	boom := errors.New("exit status 3")
	f := newOpenFixture(t, boom)
	f.catalog.AddRecords("ApexClass", where("Name", "Svc"), domain.CatalogRecord{ID: "01p01"})

	_, err := f.svc.Open(context.Background(), "Svc.cls", driving.OpenOptions{})

	assert.ErrorIs(t, err, boom)
}

func TestOpenService_Resolve(t *testing.T) {
	f := newOpenFixture(t, nil)
	f.catalog.AddRecords("ApexTrigger", where("Name", "T"), domain.CatalogRecord{ID: "01q01"})

	res, err := f.svc.Resolve(context.Background(), "T.trigger", driving.OpenOptions{})

	require.NoError(t, err)
	assert.Equal(t, "lightning/setup/ApexTriggers/page?address=%2F01q01", res.RelativeURL)
	assert.Empty(t, res.URL)
	assert.Empty(t, f.browser.Opened())
}

func TestOpenService_InvalidInputNeverConnects(t *testing.T) {
	tests := []struct {
		path    string
		wantErr error
	}{
		{"", domain.ErrInvalidInput},
		{"force-app/", domain.ErrInvalidInput},
		{"x.foo.bar", domain.ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f := newOpenFixture(t, nil)

			_, err := f.svc.Open(context.Background(), tt.path, driving.OpenOptions{})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.factory.Connected())
			assert.Empty(t, f.browser.Opened())
		})
	}
}

func TestOpenService_NotFoundNeverOpens(t *testing.T) {
	f := newOpenFixture(t, nil)

	_, err := f.svc.Open(context.Background(), "Nope.flow-meta.xml", driving.OpenOptions{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.browser.Opened())
}

func TestOpenService_UnknownOrg(t *testing.T) {
	f := newOpenFixture(t, nil)

	_, err := f.svc.Open(context.Background(), "Svc.cls", driving.OpenOptions{OrgAlias: "prod"})

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.Empty(t, f.factory.Connected())
}

func TestOpenService_ConnectFailure(t *testing.T) {
	noEnv(t)
	orgs := NewOrgService(file.NewOrgStore(memory.NewConfigStore()), nil)
	require.NoError(t, orgs.Add(domain.Org{Alias: "dev", InstanceURL: testInstanceURL, AccessToken: "tok"}))
	svc := NewOpenService(orgs, memory.NewConnectionFactory(nil, domain.ErrAuthRequired), memory.NewBrowser(nil))

	_, err := svc.Open(context.Background(), "Svc.cls", driving.OpenOptions{})

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestOpenService_NotConfigured(t *testing.T) {
	svc := NewOpenService(nil, nil, nil)

	_, err := svc.Open(context.Background(), "Svc.cls", driving.OpenOptions{})

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestOpenService_SupportedTypes(t *testing.T) {
	svc := NewOpenService(nil, nil, nil)
	assert.Len(t, svc.SupportedTypes(), 15)
}
