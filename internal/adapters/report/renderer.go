// Package report renders prune reports and package listings as text, JSON or YAML.
package report

import (
	"encoding/json"
	"io"

	"go.trai.ch/wsprune/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Renderer implements ports.Reporter.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderReport writes report to w in the given format.
func (r *Renderer) RenderReport(w io.Writer, format domain.ReportFormat, report *domain.Report) error {
	if report == nil {
		report = &domain.Report{}
	}

	var err error
	switch format {
	case domain.FormatText, "":
		err = writeTextReport(w, report)
	case domain.FormatJSON:
		err = writeJSON(w, newReportDTO(report))
	case domain.FormatYAML:
		err = writeYAML(w, newReportDTO(report))
	default:
		return zerr.With(domain.ErrInvalidReportFormat, "format", string(format))
	}

	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportRenderFailed.Error()), "format", string(format))
	}
	return nil
}

// RenderPackages writes pkgs and their dependencies to w in the given format.
func (r *Renderer) RenderPackages(w io.Writer, format domain.ReportFormat, pkgs []domain.Package) error {
	var err error
	switch format {
	case domain.FormatText, "":
		err = writeTextPackages(w, pkgs)
	case domain.FormatJSON:
		err = writeJSON(w, scanDTO{Packages: newPackageDTOs(pkgs, true)})
	case domain.FormatYAML:
		err = writeYAML(w, scanDTO{Packages: newPackageDTOs(pkgs, true)})
	default:
		return zerr.With(domain.ErrInvalidReportFormat, "format", string(format))
	}

	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportRenderFailed.Error()), "format", string(format))
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
