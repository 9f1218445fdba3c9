package ports

import (
	"io"

	"go.trai.ch/wsprune/internal/core/domain"
)

// Reporter writes run results for humans or machines.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// RenderReport writes the outcome of a prune run.
	RenderReport(w io.Writer, format domain.ReportFormat, report *domain.Report) error

	// RenderPackages writes a package listing together with each package's dependencies.
	RenderPackages(w io.Writer, format domain.ReportFormat, pkgs []domain.Package) error
}
