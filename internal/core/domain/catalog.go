package domain

import (
	"sort"
	"strings"
)

// CatalogRecord is the part of an org catalog row a resolver needs.
type CatalogRecord struct {
	// ID is the record identifier.
	ID string
	// ParentID is the owning entity identifier. Only set when the query
	// asked for a parent field.
	ParentID string
}

// CatalogQuery describes a field-equality lookup against one catalog object.
type CatalogQuery struct {
	// Object is the catalog object name (e.g. "FlowDefinition").
	Object string
	// Where holds field = value conditions, all of which must match.
	Where map[string]string
	// ParentField names a field to return as CatalogRecord.ParentID.
	ParentField string
}

// SOQL renders q as a query statement.
// Conditions are sorted by field so the statement is stable.
func (q CatalogQuery) SOQL() string {
	var b strings.Builder
	b.WriteString("SELECT Id")
	if q.ParentField != "" {
		b.WriteString(", ")
		b.WriteString(q.ParentField)
	}
	b.WriteString(" FROM ")
	b.WriteString(q.Object)

	fields := make([]string, 0, len(q.Where))
	for f := range q.Where {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for i, f := range fields {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(f)
		b.WriteString(" = ")
		b.WriteString(QuoteLiteral(q.Where[f]))
	}
	return b.String()
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// QuoteLiteral returns s as a single-quoted query string literal.
func QuoteLiteral(s string) string {
	return "'" + literalEscaper.Replace(s) + "'"
}

// Resolution is the outcome of resolving a metadata path.
type Resolution struct {
	// Path is the input path.
	Path string `json:"path"`
	// Type is the metadata type name.
	Type string `json:"type"`
	// RelativeURL is the setup path fragment.
	RelativeURL string `json:"relativeUrl"`
	// URL is the absolute URL, empty when only the fragment was resolved.
	URL string `json:"url,omitempty"`
	// Opened reports whether a browser was launched.
	Opened bool `json:"opened"`
}
