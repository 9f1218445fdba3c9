// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/wsprune/internal/core/domain"
)

// PackageScanner discovers the packages below a directory.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type PackageScanner interface {
	// Scan walks root and returns one package per manifest found, in no
	// particular order. Directories whose base name matches one of excludes
	// are not entered. The first unreadable directory or invalid manifest
	// aborts the scan.
	Scan(ctx context.Context, root string, excludes []string) ([]domain.Package, error)
}
