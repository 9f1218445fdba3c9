// Package app implements the application layer for wsprune.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/wsprune/internal/core/domain"
	"go.trai.ch/wsprune/internal/core/ports"
	"go.trai.ch/wsprune/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scanner      ports.PackageScanner
	hasher       ports.Hasher
	pruner       ports.Pruner
	reporter     ports.Reporter
	telemetry    ports.Telemetry
	logger       ports.Logger
	stdout       io.Writer
	progress     io.Writer
}

// New creates a new App instance writing reports to stdout.
func New(
	loader ports.ConfigLoader,
	scanner ports.PackageScanner,
	hasher ports.Hasher,
	pruner ports.Pruner,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scanner:      scanner,
		hasher:       hasher,
		pruner:       pruner,
		reporter:     reporter,
		telemetry:    telemetry,
		logger:       log,
		stdout:       os.Stdout,
		progress:     os.Stderr,
	}
}

// WithOutput sets the writer reports are rendered to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithProgressOutput sets the writer phases are printed to when progress is requested.
func (a *App) WithProgressOutput(w io.Writer) *App {
	a.progress = w
	return a
}

// PruneOptions configuration for the Prune method.
// Empty fields fall back to the settings file, then to the defaults.
type PruneOptions struct {
	ConfigPath        string
	Upstream          string
	Workspaces        []string
	Packages          []string
	Types             []string
	Action            string
	Format            string
	Exclude           []string
	ExpectFingerprint string
	Progress          bool
}

// ScanOptions configuration for the Scan method.
type ScanOptions struct {
	ConfigPath string
	Roots      []string
	Exclude    []string
	Format     string
	Progress   bool
}

// Prune finds the upstream packages the kept packages do not need and applies
// the configured action to them. Nothing is changed on disk unless every
// scan succeeded and the fingerprint, when expected, matches.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Prune(ctx context.Context, opts PruneOptions) (err error) {
	defer func() {
		if cerr := a.telemetry.Close(); err == nil {
			err = cerr
		}
	}()
	if opts.Progress {
		a.telemetry.ShowProgress(a.progress)
	}

	// 1. Merge flags over the settings file
	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}
	plan, err := mergePruneOptions(opts, settings)
	if err != nil {
		return err
	}

	// 2. Resolve paths
	upstreamRoot, err := canonicalPath(plan.upstream)
	if err != nil {
		return err
	}

	if len(plan.workspaces) == 0 && len(plan.packages) == 0 {
		a.logger.Info("no workspace given, using the current directory")
		plan.workspaces = []string{"."}
	}
	workspaceRoots, err := canonicalPaths(plan.workspaces)
	if err != nil {
		return err
	}

	// 3. Scan
	upstream, err := a.scan(ctx, "scan upstream", upstreamRoot, plan.exclude)
	if err != nil {
		return err
	}

	var kept []domain.Package
	if len(workspaceRoots) > 0 {
		for _, root := range workspaceRoots {
			pkgs, err := a.scan(ctx, "scan workspace "+root, root, plan.exclude)
			if err != nil {
				return err
			}
			kept = append(kept, pkgs...)
		}
	} else {
		kept = a.selectPackages(ctx, upstream, plan.packages)
	}

	upstream = domain.NormalizePackages(upstream)
	kept = domain.NormalizePackages(kept)
	if len(kept) == 0 {
		return emptyWorkspaceError(workspaceRoots, plan.packages)
	}

	// 4. Resolve
	_, vertex := a.telemetry.Record(ctx, "resolve")
	unused := domain.NormalizePackages(resolver.FindUnused(kept, upstream, plan.filter))
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d of %d upstream packages are unused", len(unused), len(upstream)))
	vertex.Complete(nil)

	fingerprint, err := a.hasher.Fingerprint(unused)
	if err != nil {
		return err
	}
	if plan.expect != "" && !strings.EqualFold(plan.expect, fingerprint) {
		return zerr.With(zerr.With(domain.ErrFingerprintMismatch, "expected", plan.expect), "actual", fingerprint)
	}

	// 5. Report
	report := &domain.Report{
		Action:      plan.action,
		Filter:      plan.filter,
		Workspaces:  workspaceRoots,
		Workspace:   kept,
		Upstream:    upstream,
		Unused:      unused,
		Fingerprint: fingerprint,
	}
	if err := a.reporter.RenderReport(a.stdout, plan.format, report); err != nil {
		return err
	}

	// 6. Apply
	if !plan.action.Destructive() || len(unused) == 0 {
		return nil
	}
	applyCtx, vertex := a.telemetry.Record(ctx, "apply "+string(plan.action))
	err = a.pruner.Apply(applyCtx, plan.action, unused)
	vertex.Complete(err)
	return err
}

// Scan lists the packages found below each root, the current directory when
// no root is given.
func (a *App) Scan(ctx context.Context, opts ScanOptions) (err error) {
	defer func() {
		if cerr := a.telemetry.Close(); err == nil {
			err = cerr
		}
	}()
	if opts.Progress {
		a.telemetry.ShowProgress(a.progress)
	}

	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	format := settings.Format
	if opts.Format != "" {
		if format, err = domain.ParseReportFormat(opts.Format); err != nil {
			return err
		}
	}
	exclude := settings.Exclude
	if len(opts.Exclude) > 0 {
		exclude = opts.Exclude
	}

	roots := opts.Roots
	if len(roots) == 0 {
		roots = []string{"."}
	}
	canonical, err := canonicalPaths(roots)
	if err != nil {
		return err
	}

	var pkgs []domain.Package
	for _, root := range canonical {
		found, err := a.scan(ctx, "scan "+root, root, exclude)
		if err != nil {
			return err
		}
		pkgs = append(pkgs, found...)
	}

	return a.reporter.RenderPackages(a.stdout, orDefault(format, domain.FormatText), domain.NormalizePackages(pkgs))
}

func (a *App) loadSettings(path string) (*domain.Settings, error) {
	if path != "" {
		return a.configLoader.LoadFile(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPathResolveFailed.Error())
	}
	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, err
	}
	if settings.Source != "" {
		a.logger.Info("using settings from " + settings.Source)
	}
	return settings, nil
}

func (a *App) scan(ctx context.Context, phase, root string, excludes []string) ([]domain.Package, error) {
	ctx, vertex := a.telemetry.Record(ctx, phase)
	pkgs, err := a.scanner.Scan(ctx, root, excludes)
	if err == nil {
		vertex.Log(domain.LogLevelInfo, fmt.Sprintf("found %d packages", len(pkgs)))
	}
	vertex.Complete(err)
	return pkgs, err
}

// selectPackages returns the upstream packages with one of the given names.
// Unknown names are reported and skipped.
func (a *App) selectPackages(ctx context.Context, upstream []domain.Package, names []string) []domain.Package {
	_, vertex := a.telemetry.Record(ctx, "select packages")
	defer vertex.Complete(nil)

	byName := make(map[string][]domain.Package, len(upstream))
	for _, p := range upstream {
		byName[p.Name.String()] = append(byName[p.Name.String()], p)
	}

	var selected []domain.Package
	for _, name := range names {
		pkgs, ok := byName[name]
		if !ok {
			msg := fmt.Sprintf("package %s is not in the upstream pool", name)
			a.logger.Warn(msg)
			vertex.Log(domain.LogLevelWarn, msg)
			continue
		}
		selected = append(selected, pkgs...)
	}
	return selected
}

func emptyWorkspaceError(workspaces, packages []string) error {
	err := domain.ErrEmptyWorkspace
	if len(workspaces) > 0 {
		err = zerr.With(err, "workspaces", strings.Join(workspaces, ", "))
	}
	if len(packages) > 0 {
		err = zerr.With(err, "packages", strings.Join(packages, ", "))
	}
	return err
}

// canonicalPath makes path absolute and resolves symlinks.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "path", path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "path", path)
	}
	return resolved, nil
}

// canonicalPaths resolves every path and returns them sorted without duplicates.
func canonicalPaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		c, err := canonicalPath(p)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
