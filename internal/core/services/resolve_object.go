package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
)

// sObjectResolver opens an object definition: objects/Foo__c/Foo__c.object-meta.xml.
type sObjectResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *sObjectResolver) URL(ctx context.Context) (string, error) {
	name := r.path.MemberName()
	id, err := objectID(ctx, r.conn, name)
	if err != nil {
		return "", err
	}

	switch {
	case domain.IsCustomMetadata(name):
		return setupPage("CustomMetadata", id+"%3Fsetupid%3DCustomMetadata"), nil
	case domain.IsPlatformEvent(name):
		return setupPage("EventObjects", id+"%3Fsetupid%3DEventObjects"), nil
	default:
		return objectManagerPage(id, "Details", "view"), nil
	}
}

// fieldResolver opens a field: objects/Account/fields/Foo__c.field-meta.xml.
type fieldResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *fieldResolver) URL(ctx context.Context) (string, error) {
	objectName := r.path.ParentDir(2)
	fieldName := r.path.MemberName()
	if objectName == "" {
		return "", fmt.Errorf("%w: cannot tell which object owns field %q", domain.ErrInvalidInput, fieldName)
	}

	objID, err := objectID(ctx, r.conn, objectName)
	if err != nil {
		return "", err
	}

	if domain.IsStandardField(fieldName) {
		// Object Manager addresses lookups by relationship name
		if len(fieldName) > 2 {
			fieldName = strings.TrimSuffix(fieldName, "Id")
		}
		return objectManagerPage(objID, "FieldsAndRelationships", fieldName, "view"), nil
	}

	rec, err := findOne(ctx, r.conn, domain.CatalogQuery{
		Object: "CustomField",
		Where: map[string]string{
			"DeveloperName": domain.ObjectFieldDeveloperName(fieldName),
			"TableEnumOrId": objID,
		},
	}, "field", objectName+"."+fieldName)
	if err != nil {
		return "", err
	}

	switch {
	case domain.IsCustomMetadata(objectName):
		return setupPage("CustomMetadata", rec.ID), nil
	case domain.IsPlatformEvent(objectName):
		return setupPage("EventObjects", rec.ID), nil
	default:
		return objectManagerPage(objID, "FieldsAndRelationships", rec.ID, "view"), nil
	}
}

// validationRuleResolver opens a validation rule. The owning object comes
// from the rule record rather than the directory layout.
type validationRuleResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *validationRuleResolver) URL(ctx context.Context) (string, error) {
	name := r.path.MemberName()
	rec, err := findOne(ctx, r.conn, domain.CatalogQuery{
		Object:      "ValidationRule",
		Where:       map[string]string{"ValidationName": name},
		ParentField: "EntityDefinitionId",
	}, "validation rule", name)
	if err != nil {
		return "", err
	}

	entityID := rec.ParentID
	if entityID == "" {
		entityID = r.path.ParentDir(2)
	}
	if entityID == "" {
		return "", fmt.Errorf("%w: validation rule %q has no owning object", domain.ErrInvalidInput, name)
	}
	return objectManagerPage(entityID, "ValidationRules", rec.ID, "view"), nil
}

// recordTypeResolver opens a record type: objects/Account/recordTypes/Foo.recordType-meta.xml.
type recordTypeResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *recordTypeResolver) URL(ctx context.Context) (string, error) {
	name := r.path.MemberName()
	objID, rec, err := objectIDAndRecord(ctx, r.conn, r.path.ParentDir(2), domain.CatalogQuery{
		Object: "RecordType",
		Where:  map[string]string{"DeveloperName": name},
	}, "record type", name)
	if err != nil {
		return "", err
	}
	return objectManagerPage(objID, "RecordTypes", rec.ID, "view"), nil
}

// pageLayoutResolver opens a page layout: layouts/Account-Account %28Sales%29 Layout.layout-meta.xml.
type pageLayoutResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *pageLayoutResolver) URL(ctx context.Context) (string, error) {
	member := r.path.MemberName()
	objectName, encoded, ok := strings.Cut(member, "-")
	if !ok || objectName == "" || encoded == "" {
		return "", fmt.Errorf("%w: layout %q is not named <Object>-<Layout>", domain.ErrInvalidInput, member)
	}
	layoutName, err := url.PathUnescape(encoded)
	if err != nil {
		layoutName = encoded
	}

	objID, rec, err := objectIDAndRecord(ctx, r.conn, objectName, domain.CatalogQuery{
		Object: "Layout",
		Where:  map[string]string{"Name": layoutName},
	}, "layout", layoutName)
	if err != nil {
		return "", err
	}
	return objectManagerPage(objID, "PageLayouts", rec.ID, "view"), nil
}

// quickActionResolver opens a quick action: quickActions/Account.New_Case.quickAction-meta.xml.
// Global actions (no object prefix) open the global actions page.
type quickActionResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *quickActionResolver) URL(ctx context.Context) (string, error) {
	member := r.path.MemberName()
	objectName, actionName, scoped := strings.Cut(member, ".")
	if !scoped {
		rec, err := findOne(ctx, r.conn, domain.CatalogQuery{
			Object: "QuickActionDefinition",
			Where:  map[string]string{"DeveloperName": member},
		}, "quick action", member)
		if err != nil {
			return "", err
		}
		return setupPage("GlobalActions", rec.ID), nil
	}

	objID, rec, err := objectIDAndRecord(ctx, r.conn, objectName, domain.CatalogQuery{
		Object: "QuickActionDefinition",
		Where:  map[string]string{"DeveloperName": actionName},
	}, "quick action", member)
	if err != nil {
		return "", err
	}
	return objectManagerPage(objID, "ButtonsLinksActions", rec.ID, "view"), nil
}

// approvalProcessResolver opens an approval process: Account.Discount.approvalProcess-meta.xml.
// ProcessDefinition is only reachable through the data API, so it uses Query.
type approvalProcessResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *approvalProcessResolver) URL(ctx context.Context) (string, error) {
	name := r.path.NameSegment(1)
	if name == "" || name == domain.MetadataTypeApprovalProcess.Kind() {
		return "", fmt.Errorf("%w: approval process %q is not named <Object>.<Process>",
			domain.ErrInvalidInput, r.path.APIName)
	}

	soql := domain.CatalogQuery{
		Object: "ProcessDefinition",
		Where:  map[string]string{"DeveloperName": name, "Type": "Approval"},
	}.SOQL()
	rec, err := queryOne(ctx, r.conn, soql, "approval process", name)
	if err != nil {
		return "", err
	}
	return setupPage("ApprovalProcesses", rec.ID), nil
}
