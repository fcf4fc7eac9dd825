package salesforce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/orgopen/internal/core/domain"
)

func newTestOrg(serverURL string) domain.Org {
	return domain.Org{Alias: "dev", InstanceURL: serverURL + "/", AccessToken: "tok"}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_FindRecords(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set(HeaderLimitInfo, "api-usage=25/15000")
		writeJSON(t, w, http.StatusOK, map[string]any{
			"totalSize": 1,
			"done":      true,
			"records": []map[string]any{{
				"attributes":         map[string]any{"type": "ValidationRule"},
				"Id":                 "03d000000000001",
				"EntityDefinitionId": "01I000000000001",
			}},
		})
	}))
	defer srv.Close()

	conn, err := NewConnectionFactory(0).Connect(context.Background(), newTestOrg(srv.URL))
	require.NoError(t, err)

	records, err := conn.FindRecords(context.Background(), domain.CatalogQuery{
		Object:      "ValidationRule",
		Where:       map[string]string{"ValidationName": "Amount_Positive"},
		ParentField: "EntityDefinitionId",
	})

	require.NoError(t, err)
	assert.Equal(t, "/services/data/v61.0/tooling/query", gotPath)
	assert.Equal(t, "SELECT Id, EntityDefinitionId FROM ValidationRule WHERE ValidationName = 'Amount_Positive'", gotQuery)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, []domain.CatalogRecord{{ID: "03d000000000001", ParentID: "01I000000000001"}}, records)
	assert.Equal(t, srv.URL, conn.InstanceURL())

	used, limit := conn.(*Client).RateLimiter().Usage()
	assert.Equal(t, 25, used)
	assert.Equal(t, 15000, limit)
}

func TestClient_Query(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(t, w, http.StatusOK, map[string]any{
			"totalSize": 2,
			"done":      true,
			"records":   []map[string]any{{"Id": "04a01"}, {"Id": "04a02"}},
		})
	}))
	defer srv.Close()

	org := newTestOrg(srv.URL)
	org.APIVersion = "v59.0"
	conn, err := NewConnectionFactory(0).Connect(context.Background(), org)
	require.NoError(t, err)

	records, err := conn.Query(context.Background(), "SELECT Id FROM ProcessDefinition")

	require.NoError(t, err)
	assert.Equal(t, "/services/data/v59.0/query", gotPath)
	assert.Equal(t, []domain.CatalogRecord{{ID: "04a01"}, {ID: "04a02"}}, records)
}

func TestClient_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"totalSize": 0, "done": true, "records": []any{}})
	}))
	defer srv.Close()

	conn, err := NewConnectionFactory(0).Connect(context.Background(), newTestOrg(srv.URL))
	require.NoError(t, err)

	records, err := conn.FindRecords(context.Background(), domain.CatalogQuery{
		Object: "FlowDefinition",
		Where:  map[string]string{"DeveloperName": "Missing"},
	})

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClient_APIErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     any
		wantErr  error
		wantCode string
	}{
		{
			name:     "expired session",
			status:   http.StatusUnauthorized,
			body:     []map[string]string{{"message": "Session expired or invalid", "errorCode": "INVALID_SESSION_ID"}},
			wantErr:  domain.ErrAuthRequired,
			wantCode: "INVALID_SESSION_ID",
		},
		{
			name:     "malformed query",
			status:   http.StatusBadRequest,
			body:     []map[string]string{{"message": "unexpected token", "errorCode": "MALFORMED_QUERY"}},
			wantErr:  domain.ErrOrgQuery,
			wantCode: "MALFORMED_QUERY",
		},
		{
			name:    "unstructured body",
			status:  http.StatusNotFound,
			body:    map[string]string{"oops": "x"},
			wantErr: domain.ErrOrgQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			conn, err := NewConnectionFactory(0).Connect(context.Background(), newTestOrg(srv.URL))
			require.NoError(t, err)

			_, err = conn.Query(context.Background(), "SELECT Id FROM Account")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestClient_ServerErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	conn, err := NewConnectionFactory(0).Connect(context.Background(), newTestOrg(srv.URL))
	require.NoError(t, err)

	_, err = conn.Query(context.Background(), "SELECT Id FROM Account")

	assert.ErrorIs(t, err, domain.ErrOrgQuery)
	assert.Equal(t, int32(1), calls.Load())
}

func TestConnectionFactory_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	conn, err := NewConnectionFactory(50*time.Millisecond).Connect(context.Background(), newTestOrg(srv.URL))
	require.NoError(t, err)

	_, err = conn.Query(context.Background(), "SELECT Id FROM Account")

	assert.ErrorIs(t, err, domain.ErrOrgQuery)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	conn, err := NewConnectionFactory(0).Connect(context.Background(), newTestOrg(url))
	require.NoError(t, err)

	_, err = conn.Query(context.Background(), "SELECT Id FROM Account")

	assert.ErrorIs(t, err, domain.ErrOrgQuery)
}

func TestClient_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"records": []any{}})
	}))
	defer srv.Close()

	conn, err := NewConnectionFactory(0).Connect(context.Background(), newTestOrg(srv.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = conn.Query(ctx, "SELECT Id FROM Account")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnectionFactory_InvalidOrg(t *testing.T) {
	tests := []struct {
		name    string
		org     domain.Org
		wantErr error
	}{
		{"no instance", domain.Org{Alias: "x", AccessToken: "t"}, domain.ErrInvalidInput},
		{"bad instance", domain.Org{Alias: "x", InstanceURL: "acme", AccessToken: "t"}, domain.ErrInvalidInput},
		{"no token", domain.Org{Alias: "x", InstanceURL: "https://acme.my.salesforce.com"}, domain.ErrAuthRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConnectionFactory(0).Connect(context.Background(), tt.org)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
