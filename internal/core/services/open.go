package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/core/ports/driven"
	"github.com/custodia-labs/orgopen/internal/core/ports/driving"
	"github.com/custodia-labs/orgopen/internal/logger"
)

// Ensure OpenService implements the interface.
var _ driving.OpenService = (*OpenService)(nil)

// OpenService resolves metadata source paths and launches the browser.
type OpenService struct {
	orgs      driving.OrgService
	connector driven.ConnectionFactory
	browser   driven.Browser
}

// NewOpenService creates a new open service.
func NewOpenService(
	orgs driving.OrgService,
	connector driven.ConnectionFactory,
	browser driven.Browser,
) *OpenService {
	return &OpenService{
		orgs:      orgs,
		connector: connector,
		browser:   browser,
	}
}

// Resolve returns the setup path fragment for path.
func (s *OpenService) Resolve(ctx context.Context, path string, opts driving.OpenOptions) (*domain.Resolution, error) {
	res, _, err := s.resolve(ctx, path, opts)
	return res, err
}

// Open resolves path and, unless opts.URLOnly is set, opens it in the browser.
func (s *OpenService) Open(ctx context.Context, path string, opts driving.OpenOptions) (*domain.Resolution, error) {
	res, conn, err := s.resolve(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	res.URL = joinURL(conn.InstanceURL(), res.RelativeURL)
	if opts.URLOnly {
		return res, nil
	}

	if s.browser == nil {
		return nil, fmt.Errorf("%w: no browser configured", domain.ErrBrowser)
	}
	logger.Info("opening %s", res.URL)
	if err := s.browser.Open(ctx, res.URL); err != nil {
		return nil, err
	}
	res.Opened = true
	return res, nil
}

// SupportedTypes returns the metadata types the service can resolve.
func (s *OpenService) SupportedTypes() []domain.MetadataType {
	return domain.MetadataTypes()
}

func (s *OpenService) resolve(
	ctx context.Context, raw string, opts driving.OpenOptions,
) (*domain.Resolution, driven.OrgConnection, error) {
	// Classify before connecting so bad input never reaches the network
	path, err := domain.ParsePath(raw)
	if err != nil {
		return nil, nil, err
	}
	mt, err := domain.ParseMetadataType(path.Extension)
	if err != nil {
		return nil, nil, err
	}
	logger.Section("Resolve")
	logger.Debug("path %s: type=%s api=%s", path.Base, mt, path.APIName)

	conn, err := s.connect(ctx, opts.OrgAlias)
	if err != nil {
		return nil, nil, err
	}

	resolver, err := NewResolver(conn, path)
	if err != nil {
		return nil, nil, err
	}
	rel, err := resolver.URL(ctx)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("resolved %s", rel)

	return &domain.Resolution{
		Path:        raw,
		Type:        mt.String(),
		RelativeURL: rel,
	}, conn, nil
}

func (s *OpenService) connect(ctx context.Context, alias string) (driven.OrgConnection, error) {
	if s.orgs == nil || s.connector == nil {
		return nil, fmt.Errorf("%w: no org connection configured", domain.ErrAuthRequired)
	}
	org, err := s.orgs.Get(alias)
	if err != nil {
		return nil, err
	}
	logger.SetField("org", org.Alias)
	return s.connector.Connect(ctx, *org)
}

// joinURL joins base and rel with exactly one slash.
func joinURL(base, rel string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(rel, "/")
}
