package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
	"github.com/custodia-labs/orgopen/internal/logger"
)

// Setup UI path fragments.
const (
	setupPrefix         = "lightning/setup/"
	objectManagerPrefix = setupPrefix + "ObjectManager/"
	addressParam        = "/page?address=%2F"
)

// setupPage returns the classic-setup wrapper URL for a record id.
func setupPage(section, id string) string {
	return setupPrefix + section + addressParam + id
}

// objectManagerPage returns an Object Manager URL below objectID.
func objectManagerPage(objectID string, parts ...string) string {
	return objectManagerPrefix + objectID + "/" + strings.Join(parts, "/")
}

// findOne runs q and returns the first record. Zero records is ErrNotFound
// naming kind and name; more than one is accepted and the first wins.
func findOne(
	ctx context.Context, conn driven.OrgConnection, q domain.CatalogQuery, kind, name string,
) (domain.CatalogRecord, error) {
	logger.Debug("find %s where %v", q.Object, q.Where)
	records, err := conn.FindRecords(ctx, q)
	if err != nil {
		return domain.CatalogRecord{}, fmt.Errorf("look up %s %q: %w", kind, name, err)
	}
	return firstRecord(records, kind, name)
}

// queryOne is findOne for a raw query.
func queryOne(
	ctx context.Context, conn driven.OrgConnection, soql, kind, name string,
) (domain.CatalogRecord, error) {
	logger.Debug("query %s", soql)
	records, err := conn.Query(ctx, soql)
	if err != nil {
		return domain.CatalogRecord{}, fmt.Errorf("look up %s %q: %w", kind, name, err)
	}
	return firstRecord(records, kind, name)
}

func firstRecord(records []domain.CatalogRecord, kind, name string) (domain.CatalogRecord, error) {
	if len(records) == 0 {
		return domain.CatalogRecord{}, fmt.Errorf("%s %q %w", kind, name, domain.ErrNotFound)
	}
	if len(records) > 1 {
		logger.Debug("%d %s records match %q, using %s", len(records), kind, name, records[0].ID)
	}
	return records[0], nil
}

// objectID returns the Object Manager key for an object API name.
// Standard objects are addressed by name; custom objects, custom metadata
// types and platform events by their CustomObject id.
func objectID(ctx context.Context, conn driven.OrgConnection, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: missing object name", domain.ErrInvalidInput)
	}
	if domain.IsStandardObject(name) {
		return name, nil
	}
	rec, err := findOne(ctx, conn, domain.CatalogQuery{
		Object: "CustomObject",
		Where:  map[string]string{"DeveloperName": domain.ObjectFieldDeveloperName(name)},
	}, "object", name)
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// objectIDAndRecord runs objectID and findOne concurrently.
// The first failure cancels the other lookup and is returned.
func objectIDAndRecord(
	ctx context.Context, conn driven.OrgConnection, objectName string, q domain.CatalogQuery, kind, name string,
) (string, domain.CatalogRecord, error) {
	var (
		objID string
		rec   domain.CatalogRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		id, err := objectID(gctx, conn, objectName)
		objID = id
		return err
	})
	g.Go(func() error {
		r, err := findOne(gctx, conn, q, kind, name)
		rec = r
		return err
	})

	if err := g.Wait(); err != nil {
		return "", domain.CatalogRecord{}, err
	}
	return objID, rec, nil
}
