package report

import "go.trai.ch/wsprune/internal/core/domain"

type reportDTO struct {
	Action      string       `json:"action" yaml:"action"`
	Filter      string       `json:"filter" yaml:"filter"`
	Workspaces  []string     `json:"workspaces" yaml:"workspaces"`
	Workspace   []packageDTO `json:"workspace" yaml:"workspace"`
	Upstream    []packageDTO `json:"upstream" yaml:"upstream"`
	Unused      []packageDTO `json:"unused" yaml:"unused"`
	Fingerprint string       `json:"fingerprint" yaml:"fingerprint"`
}

type scanDTO struct {
	Packages []packageDTO `json:"packages" yaml:"packages"`
}

type packageDTO struct {
	Name string          `json:"name" yaml:"name"`
	Path string          `json:"path" yaml:"path"`
	Deps []dependencyDTO `json:"deps,omitempty" yaml:"deps,omitempty"`
}

type dependencyDTO struct {
	Name string         `json:"name" yaml:"name"`
	Type domain.DepType `json:"type" yaml:"type"`
}

func newReportDTO(r *domain.Report) reportDTO {
	workspaces := r.Workspaces
	if workspaces == nil {
		workspaces = []string{}
	}
	return reportDTO{
		Action:      string(r.Action),
		Filter:      r.Filter.String(),
		Workspaces:  workspaces,
		Workspace:   newPackageDTOs(r.Workspace, false),
		Upstream:    newPackageDTOs(r.Upstream, false),
		Unused:      newPackageDTOs(r.Unused, false),
		Fingerprint: r.Fingerprint,
	}
}

func newPackageDTOs(pkgs []domain.Package, withDeps bool) []packageDTO {
	out := make([]packageDTO, 0, len(pkgs))
	for _, p := range pkgs {
		dto := packageDTO{Name: p.Name.String(), Path: p.Path}
		if withDeps {
			for _, d := range p.Deps {
				dto.Deps = append(dto.Deps, dependencyDTO{Name: d.Name.String(), Type: d.Type})
			}
		}
		out = append(out, dto)
	}
	return out
}
