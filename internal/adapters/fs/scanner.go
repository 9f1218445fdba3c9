package fs

import (
	"context"
	"path/filepath"

	"go.trai.ch/wsprune/internal/adapters/manifest"
	"go.trai.ch/wsprune/internal/core/domain"
	"go.trai.ch/wsprune/internal/core/ports"
)

var _ ports.PackageScanner = (*Scanner)(nil)

// Scanner builds packages from the manifests found by a Walker.
type Scanner struct {
	walker *Walker
}

// NewScanner creates a new Scanner.
func NewScanner(walker *Walker) *Scanner {
	return &Scanner{walker: walker}
}

// Scan returns the packages below root in walk order.
func (s *Scanner) Scan(ctx context.Context, root string, excludes []string) ([]domain.Package, error) {
	var pkgs []domain.Package
	for dir, err := range s.walker.WalkPackages(ctx, root, excludes) {
		if err != nil {
			return nil, err
		}

		m, err := manifest.ParseFile(filepath.Join(dir, domain.ManifestFileName))
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, m.Package(dir))
	}
	return pkgs, nil
}
