package domain

import (
	"fmt"
	"strings"
)

// MetadataType identifies one of the supported metadata kinds.
// The set is closed: adding a kind means adding a constant, a token
// and a resolver.
type MetadataType int

// Supported metadata types.
const (
	MetadataTypeUnknown MetadataType = iota
	MetadataTypeFlow
	MetadataTypeField
	MetadataTypeValidationRule
	MetadataTypeFlexiPage
	MetadataTypeProfile
	MetadataTypePermissionSet
	MetadataTypePermissionSetGroup
	MetadataTypeApexClass
	MetadataTypeApexTrigger
	MetadataTypeRecordType
	MetadataTypePageLayout
	MetadataTypeSObject
	MetadataTypeGlobalValueSet
	MetadataTypeQuickAction
	MetadataTypeApprovalProcess
)

// metadataTypeInfo binds a MetadataType to its file token and display name.
type metadataTypeInfo struct {
	token string
	name  string
}

var metadataTypes = map[MetadataType]metadataTypeInfo{
	MetadataTypeFlow:               {"flow-meta.xml", "Flow"},
	MetadataTypeField:              {"field-meta.xml", "CustomField"},
	MetadataTypeValidationRule:     {"validationRule-meta.xml", "ValidationRule"},
	MetadataTypeFlexiPage:          {"flexipage-meta.xml", "FlexiPage"},
	MetadataTypeProfile:            {"profile-meta.xml", "Profile"},
	MetadataTypePermissionSet:      {"permissionset-meta.xml", "PermissionSet"},
	MetadataTypePermissionSetGroup: {"permissionsetgroup-meta.xml", "PermissionSetGroup"},
	MetadataTypeApexClass:          {"cls", "ApexClass"},
	MetadataTypeApexTrigger:        {"trigger", "ApexTrigger"},
	MetadataTypeRecordType:         {"recordType-meta.xml", "RecordType"},
	MetadataTypePageLayout:         {"layout-meta.xml", "Layout"},
	MetadataTypeSObject:            {"object-meta.xml", "CustomObject"},
	MetadataTypeGlobalValueSet:     {"globalValueSet-meta.xml", "GlobalValueSet"},
	MetadataTypeQuickAction:        {"quickAction-meta.xml", "QuickAction"},
	MetadataTypeApprovalProcess:    {"approvalProcess-meta.xml", "ApprovalProcess"},
}

// ParseMetadataType maps a file token (e.g. "field-meta.xml") to its type.
func ParseMetadataType(token string) (MetadataType, error) {
	for t, info := range metadataTypes {
		if info.token == token {
			return t, nil
		}
	}
	return MetadataTypeUnknown, fmt.Errorf("%w: %s", ErrUnsupportedType, token)
}

// MetadataTypes returns all supported types in declaration order.
func MetadataTypes() []MetadataType {
	types := make([]MetadataType, 0, len(metadataTypes))
	for t := MetadataTypeFlow; t <= MetadataTypeApprovalProcess; t++ {
		types = append(types, t)
	}
	return types
}

// Token returns the file token for the type, or "" when unknown.
func (t MetadataType) Token() string {
	return metadataTypes[t].token
}

// String returns the metadata type name as the platform spells it.
func (t MetadataType) String() string {
	if info, ok := metadataTypes[t]; ok {
		return info.name
	}
	return "Unknown"
}

// Kind returns the token without its "-meta.xml" suffix ("field", "cls").
func (t MetadataType) Kind() string {
	return strings.TrimSuffix(t.Token(), MetaSuffix)
}

// IsValid reports whether t is one of the supported types.
func (t MetadataType) IsValid() bool {
	_, ok := metadataTypes[t]
	return ok
}
