package domain

import "strings"

// Suffix markers used by the platform to tag custom components.
const (
	CustomFieldSuffix    = "__c"
	CustomMetadataSuffix = "__mdt"
	PlatformEventSuffix  = "__e"

	// NamespaceSeparator separates a managed package prefix from the name.
	NamespaceSeparator = "__"
)

// IsStandardField reports whether name is a standard (non-custom) field.
func IsStandardField(name string) bool {
	return !strings.HasSuffix(name, CustomFieldSuffix)
}

// IsCustomMetadata reports whether name is a custom metadata type.
func IsCustomMetadata(name string) bool {
	return strings.HasSuffix(name, CustomMetadataSuffix)
}

// IsPlatformEvent reports whether name is a platform event.
func IsPlatformEvent(name string) bool {
	return strings.HasSuffix(name, PlatformEventSuffix)
}

// IsStandardObject reports whether name carries none of the custom suffixes.
func IsStandardObject(name string) bool {
	return IsStandardField(name) && !IsCustomMetadata(name) && !IsPlatformEvent(name)
}

// ObjectFieldDeveloperName returns the developer name of a custom field or
// object: the suffix marker and any namespace prefix are dropped.
//
//	Namespace__Field__c -> Field
//	Field__c            -> Field
func ObjectFieldDeveloperName(fileName string) string {
	parts := strings.Split(fileName, NamespaceSeparator)
	if len(parts) > 2 {
		return parts[1]
	}
	return parts[0]
}

// NamespacePrefix returns the managed package namespace of name, if any.
func NamespacePrefix(name string) string {
	parts := strings.Split(name, NamespaceSeparator)
	if len(parts) > 2 {
		return parts[0]
	}
	return ""
}
