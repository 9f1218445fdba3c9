package app

import (
	"strings"

	"go.trai.ch/wsprune/internal/core/domain"
	"go.trai.ch/zerr"
)

// prunePlan is the validated result of merging PruneOptions over the settings file.
type prunePlan struct {
	upstream   string
	workspaces []string
	packages   []string
	filter     domain.Filter
	action     domain.Action
	format     domain.ReportFormat
	exclude    []string
	expect     string
}

func mergePruneOptions(opts PruneOptions, settings *domain.Settings) (*prunePlan, error) {
	plan := &prunePlan{
		upstream:   orDefault(opts.Upstream, settings.Upstream),
		workspaces: settings.Workspaces,
		packages:   settings.Packages,
		action:     orDefault(settings.Action, domain.ActionPrint),
		format:     orDefault(settings.Format, domain.FormatText),
		exclude:    settings.Exclude,
		expect:     strings.TrimSpace(opts.ExpectFingerprint),
	}

	if plan.upstream == "" {
		return nil, domain.ErrUpstreamRequired
	}

	if len(opts.Workspaces) > 0 || len(opts.Packages) > 0 {
		plan.workspaces = opts.Workspaces
		plan.packages = opts.Packages
	}
	if len(plan.workspaces) > 0 && len(plan.packages) > 0 {
		return nil, zerr.With(domain.ErrConflictingTargets, "workspaces", strings.Join(plan.workspaces, ", "))
	}

	types := settings.Types
	if len(opts.Types) > 0 {
		parsed, err := domain.ParseDepTypes(opts.Types)
		if err != nil {
			return nil, err
		}
		types = parsed
	}
	plan.filter = domain.SelectFilter(types)

	if opts.Action != "" {
		action, err := domain.ParseAction(opts.Action)
		if err != nil {
			return nil, err
		}
		plan.action = action
	}

	if opts.Format != "" {
		format, err := domain.ParseReportFormat(opts.Format)
		if err != nil {
			return nil, err
		}
		plan.format = format
	}

	if len(opts.Exclude) > 0 {
		plan.exclude = opts.Exclude
	}

	return plan, nil
}
