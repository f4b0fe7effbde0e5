package dlc

import (
	"context"
	"fmt"
	"time"

	"dlc-checker/core/reconcile"
	"dlc-checker/feature/gamedata"
	"dlc-checker/feature/manifest"

	"go.uber.org/zap"
)

// ManifestLoader yields raw manifest content.
type ManifestLoader interface {
	Load(ctx context.Context) (*manifest.Content, error)
}

// RootResolver finds the game installation.
type RootResolver interface {
	Resolve(ctx context.Context) (gamedata.Root, error)
}

// DirScanner lists installed archives under a root.
type DirScanner interface {
	Scan(root string) (gamedata.InstalledSet, error)
}

const reportCacheKey = "report"

// Service runs DLC checks.
type Service struct {
	source   ManifestLoader
	resolver RootResolver
	scanner  DirScanner
	logger   *zap.Logger
	reports  *reconcile.Cache[*Report]
	now      func() time.Time
}

// NewService creates a new DLC check service.
func NewService(source ManifestLoader, resolver RootResolver, scanner DirScanner, logger *zap.Logger) *Service {
	return &Service{
		source:   source,
		resolver: resolver,
		scanner:  scanner,
		logger:   logger,
		reports:  reconcile.NewCache[*Report](0),
		now:      time.Now,
	}
}

// WithReportTTL memoises CachedCheck results for ttl.
func (s *Service) WithReportTTL(ttl time.Duration) *Service {
	s.reports = reconcile.NewCache[*Report](ttl)
	return s
}

// Manifest loads and parses the manifest.
func (s *Service) Manifest(ctx context.Context) (*manifest.Manifest, *manifest.Content, error) {
	content, err := s.source.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	m, err := manifest.ParseBytes(content.Data)
	if err != nil {
		return nil, content, fmt.Errorf("failed to parse %s manifest: %w", content.Origin, err)
	}

	for _, skipped := range m.Skipped() {
		s.logger.Warn("Skipping malformed manifest line",
			zap.Int("line", skipped.Line),
			zap.String("text", skipped.Text),
			zap.String("reason", skipped.Reason))
	}

	return m, content, nil
}

// Check loads the manifest, scans the installation and reconciles the two.
// A missing manifest stops the check before the installation is touched.
func (s *Service) Check(ctx context.Context) (*Report, error) {
	m, content, err := s.Manifest(ctx)
	if err != nil {
		return nil, err
	}

	root, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve install root: %w", err)
	}

	installed, err := s.scanner.Scan(root.Path)
	if err != nil {
		return nil, err
	}

	catalog := m.Catalog()
	result := reconcile.Reconcile(catalog, installed)

	report := &Report{
		GeneratedAt: s.now(),
		Manifest: ManifestInfo{
			Origin:  content.Origin,
			Version: m.Version(),
			Entries: m.Len(),
			Skipped: m.Skipped(),
		},
		InstallRoot: root,
		Result:      result,
		Details:     reconcile.Details(catalog, installed),
	}
	if content.FetchErr != nil {
		report.Manifest.FetchError = content.FetchErr.Error()
	}

	s.logger.Debug("DLC check completed",
		zap.String("origin", string(content.Origin)),
		zap.String("root", root.Path),
		zap.Int("installed", len(result.Installed)),
		zap.Int("not_installed", len(result.NotInstalled)))

	return report, nil
}

// CachedCheck is Check memoised for the configured report TTL.
func (s *Service) CachedCheck(ctx context.Context) (*Report, error) {
	return s.reports.GetOrBuild(ctx, reportCacheKey, s.Check)
}

// Invalidate drops the memoised report.
func (s *Service) Invalidate() {
	s.reports.Invalidate(reportCacheKey)
}
