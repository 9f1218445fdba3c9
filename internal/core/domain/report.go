package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ReportFormat selects how reports are rendered.
type ReportFormat string

const (
	// FormatText is the human-readable listing.
	FormatText ReportFormat = "text"
	// FormatJSON renders reports as a single JSON document.
	FormatJSON ReportFormat = "json"
	// FormatYAML renders reports as a YAML document.
	FormatYAML ReportFormat = "yaml"
)

// ParseReportFormat parses a report format name, ignoring case.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch f := ReportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", zerr.With(ErrInvalidReportFormat, "format", s)
	}
}

// Report is the outcome of one prune run.
type Report struct {
	Action      Action
	Filter      Filter
	Workspaces  []string
	Workspace   []Package
	Upstream    []Package
	Unused      []Package
	Fingerprint string
}
