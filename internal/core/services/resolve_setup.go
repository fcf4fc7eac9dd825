package services

import (
	"context"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
)

// The resolvers in this file look up a single catalog record by name
// and wrap its id in a setup page URL.

// lookupSetupPage finds object.field = member and returns its setup page.
func lookupSetupPage(
	ctx context.Context, conn driven.OrgConnection, path domain.ParsedPath, object, field, kind, section string,
) (string, error) {
	name := path.MemberName()
	rec, err := findOne(ctx, conn, domain.CatalogQuery{
		Object: object,
		Where:  map[string]string{field: name},
	}, kind, name)
	if err != nil {
		return "", err
	}
	return setupPage(section, rec.ID), nil
}

type flowResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *flowResolver) URL(ctx context.Context) (string, error) {
	return lookupSetupPage(ctx, r.conn, r.path, "FlowDefinition", "DeveloperName", "flow", "Flows")
}

type profileResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *profileResolver) URL(ctx context.Context) (string, error) {
	return lookupSetupPage(ctx, r.conn, r.path, "Profile", "Name", "profile", "EnhancedProfiles")
}

type permissionSetResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *permissionSetResolver) URL(ctx context.Context) (string, error) {
	return lookupSetupPage(ctx, r.conn, r.path, "PermissionSet", "Name", "permission set", "PermSets")
}

type permissionSetGroupResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *permissionSetGroupResolver) URL(ctx context.Context) (string, error) {
	return lookupSetupPage(ctx, r.conn, r.path,
		"PermissionSetGroup", "DeveloperName", "permission set group", "PermSetGroups")
}

type apexClassResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *apexClassResolver) URL(ctx context.Context) (string, error) {
	return lookupSetupPage(ctx, r.conn, r.path, "ApexClass", "Name", "apex class", "ApexClasses")
}

type apexTriggerResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *apexTriggerResolver) URL(ctx context.Context) (string, error) {
	return lookupSetupPage(ctx, r.conn, r.path, "ApexTrigger", "Name", "apex trigger", "ApexTriggers")
}

type globalValueSetResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *globalValueSetResolver) URL(ctx context.Context) (string, error) {
	return lookupSetupPage(ctx, r.conn, r.path, "GlobalValueSet", "DeveloperName", "global value set", "Picklists")
}

// flexiPageResolver opens Lightning App Builder rather than a setup page.
type flexiPageResolver struct {
	conn driven.OrgConnection
	path domain.ParsedPath
}

func (r *flexiPageResolver) URL(ctx context.Context) (string, error) {
	name := r.path.MemberName()
	rec, err := findOne(ctx, r.conn, domain.CatalogQuery{
		Object: "FlexiPage",
		Where:  map[string]string{"DeveloperName": name},
	}, "flexipage", name)
	if err != nil {
		return "", err
	}
	return "visualEditor/appBuilder.app?id=" + rec.ID, nil
}
