// Package pruner applies actions to unused packages on disk.
package pruner

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/wsprune/internal/core/domain"
	"go.trai.ch/wsprune/internal/core/ports"
	"go.trai.ch/zerr"
)

const markerPerm = 0o644

var _ ports.Pruner = (*Pruner)(nil)

// Pruner implements ports.Pruner on the local file system.
type Pruner struct {
	Logger ports.Logger
}

// NewPruner creates a new Pruner with the given logger.
func NewPruner(logger ports.Logger) *Pruner {
	return &Pruner{Logger: logger}
}

// Apply performs action on each package in order. ActionPrint does nothing.
// Every side effect is logged before it happens.
func (p *Pruner) Apply(ctx context.Context, action domain.Action, pkgs []domain.Package) error {
	if !action.Destructive() {
		return nil
	}

	marker, isMarker := action.Marker()
	if !isMarker && action != domain.ActionRemove {
		return zerr.With(domain.ErrInvalidAction, "action", string(action))
	}

	for _, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := checkPath(pkg.Path); err != nil {
			return zerr.With(err, "package", pkg.Name.String())
		}

		var err error
		if isMarker {
			err = p.createMarker(ctx, filepath.Join(pkg.Path, marker))
		} else {
			err = p.remove(ctx, pkg.Path)
		}
		if err != nil {
			return zerr.With(err, "package", pkg.Name.String())
		}
	}
	return nil
}

// createMarker creates an empty marker file. An existing file is left as it is.
func (p *Pruner) createMarker(ctx context.Context, path string) error {
	p.log(ctx, "Creating '"+path+"'")

	//nolint:gosec // path is a package directory found by the scanner
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, markerPerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMarkerCreateFailed.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMarkerCreateFailed.Error()), "path", path)
	}
	return nil
}

func (p *Pruner) remove(ctx context.Context, path string) error {
	p.log(ctx, "rm -r '"+path+"'")

	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoveFailed.Error()), "path", path)
	}
	return nil
}

func (p *Pruner) log(ctx context.Context, msg string) {
	p.Logger.Info(msg)
	if v := ports.VertexFromContext(ctx); v != nil {
		v.Log(domain.LogLevelInfo, msg)
	}
}

// checkPath rejects paths that must never be modified.
func checkPath(path string) error {
	if path == "" || !filepath.IsAbs(path) {
		return zerr.With(domain.ErrUnsafeRemovalPath, "path", path)
	}
	clean := filepath.Clean(path)
	if filepath.Dir(clean) == clean {
		return zerr.With(domain.ErrUnsafeRemovalPath, "path", path)
	}
	return nil
}
