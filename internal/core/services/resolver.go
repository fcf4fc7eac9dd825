package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
)

// Resolver turns one metadata source path into a setup URL fragment.
// Implementations are stateless and built per call.
type Resolver interface {
	// URL returns the setup path relative to the org base URL.
	URL(ctx context.Context) (string, error)
}

// NewResolver returns the resolver for path's metadata type.
// Tokens outside the supported set fail with ErrUnsupportedType.
func NewResolver(conn driven.OrgConnection, path domain.ParsedPath) (Resolver, error) {
	if conn == nil {
		return nil, fmt.Errorf("%w: missing org connection", domain.ErrInvalidInput)
	}
	if path.Extension == "" {
		return nil, fmt.Errorf("%w: missing metadata path", domain.ErrInvalidInput)
	}

	mt, err := domain.ParseMetadataType(path.Extension)
	if err != nil {
		return nil, err
	}

	switch mt {
	case domain.MetadataTypeFlow:
		return &flowResolver{conn: conn, path: path}, nil
	case domain.MetadataTypeField:
		return &fieldResolver{conn: conn, path: path}, nil
	case domain.MetadataTypeValidationRule:
		return &validationRuleResolver{conn: conn, path: path}, nil
	case domain.MetadataTypeFlexiPage:
		return &flexiPageResolver{conn: conn, path: path}, nil
	case domain.MetadataTypeProfile:
		return &profileResolver{conn: conn, path: path}, nil
	case domain.MetadataTypePermissionSet:
		return &permissionSetResolver{conn: conn, path: path}, nil
	case domain.MetadataTypePermissionSetGroup:
		return &permissionSetGroupResolver{conn: conn, path: path}, nil
	case domain.MetadataTypeApexClass:
		return &apexClassResolver{conn: conn, path: path}, nil
	case domain.MetadataTypeApexTrigger:
		return &apexTriggerResolver{conn: conn, path: path}, nil
	case domain.MetadataTypeRecordType:
		return &recordTypeResolver{conn: conn, path: path}, nil
	case domain.MetadataTypePageLayout:
		return &pageLayoutResolver{conn: conn, path: path}, nil
	case domain.MetadataTypeSObject:
		return &sObjectResolver{conn: conn, path: path}, nil
	case domain.MetadataTypeGlobalValueSet:
		return &globalValueSetResolver{conn: conn, path: path}, nil
	case domain.MetadataTypeQuickAction:
		return &quickActionResolver{conn: conn, path: path}, nil
	case domain.MetadataTypeApprovalProcess:
		return &approvalProcessResolver{conn: conn, path: path}, nil
	case domain.MetadataTypeUnknown:
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, path.Extension)
}
