package domain

import (
	"fmt"
	"strings"
)

// MetaSuffix is the suffix shared by metadata XML companion files.
const MetaSuffix = "-meta.xml"

// ParsedPath is a metadata source path split into the parts the resolvers use.
// It is created once per invocation and never modified.
type ParsedPath struct {
	// Raw is the path as given.
	Raw string
	// Dir is the directory portion, slash separated.
	Dir string
	// DirSegments are the directory names from the root down.
	DirSegments []string
	// Base is the file name.
	Base string
	// Extension is the metadata type token derived from Base.
	Extension string
	// APIName is Base without the "-meta.xml" suffix, or without the token
	// for files that have no companion suffix.
	APIName string
}

// ParsePath classifies a metadata source path.
//
//	force-app/main/default/objects/Account/fields/Foo__c.field-meta.xml
//	  Extension: field-meta.xml
//	  APIName:   Foo__c.field
func ParsePath(raw string) (ParsedPath, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ParsedPath{}, fmt.Errorf("%w: empty path", ErrInvalidInput)
	}

	normalised := strings.ReplaceAll(trimmed, `\`, "/")
	if strings.HasSuffix(normalised, "/") {
		return ParsedPath{}, fmt.Errorf("%w: %q is a directory", ErrInvalidInput, raw)
	}

	dir, base := "", normalised
	if idx := strings.LastIndex(normalised, "/"); idx >= 0 {
		dir, base = normalised[:idx], normalised[idx+1:]
	}

	segments := strings.Split(base, ".")
	if len(segments) < 2 || segments[0] == "" || segments[len(segments)-1] == "" {
		return ParsedPath{}, fmt.Errorf("%w: %q has no metadata extension", ErrInvalidInput, raw)
	}

	extension := segments[len(segments)-1]
	if len(segments) > 2 {
		extension = strings.Join(segments[len(segments)-2:], ".")
	}

	apiName := strings.TrimSuffix(base, "."+extension)
	if strings.HasSuffix(base, MetaSuffix) {
		apiName = strings.TrimSuffix(base, MetaSuffix)
	}

	var dirSegments []string
	for _, s := range strings.Split(dir, "/") {
		if s != "" && s != "." {
			dirSegments = append(dirSegments, s)
		}
	}

	return ParsedPath{
		Raw:         raw,
		Dir:         dir,
		DirSegments: dirSegments,
		Base:        base,
		Extension:   extension,
		APIName:     apiName,
	}, nil
}

// MemberName returns APIName with the trailing ".<kind>" removed.
// "Foo__c.field" becomes "Foo__c"; "MyClass" is returned as is.
func (p ParsedPath) MemberName() string {
	kind := strings.TrimSuffix(p.Extension, MetaSuffix)
	return strings.TrimSuffix(p.APIName, "."+kind)
}

// NameSegment returns the i-th dot separated segment of APIName,
// or "" if there is no such segment.
func (p ParsedPath) NameSegment(i int) string {
	parts := strings.Split(p.APIName, ".")
	if i < 0 || i >= len(parts) {
		return ""
	}
	return parts[i]
}

// ParentDir returns the n-th directory above the file: 1 is the enclosing
// directory, 2 its parent. Returns "" when the path is not that deep.
func (p ParsedPath) ParentDir(n int) string {
	idx := len(p.DirSegments) - n
	if n < 1 || idx < 0 {
		return ""
	}
	return p.DirSegments[idx]
}
