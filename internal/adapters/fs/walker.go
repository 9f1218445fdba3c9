// Package fs provides file system adapters for finding, reading and hashing packages.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/wsprune/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker provides directory walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkPackages yields every package directory below root, root included.
//
// A directory is not entered when its name starts with a dot, when its name
// matches one of excludes, or when it contains an ignore marker. A directory
// holding a manifest is yielded and not entered either. The dot and exclude
// rules do not apply to root itself. Symbolic links are not followed.
//
// The walk stops at the first error, which is yielded with an empty path.
func (w *Walker) WalkPackages(ctx context.Context, root string, excludes []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, pattern := range excludes {
			if _, err := filepath.Match(pattern, ""); err != nil {
				yield("", zerr.With(zerr.Wrap(err, domain.ErrInvalidExcludePattern.Error()), "pattern", pattern))
				return
			}
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", path)
			}
			if !d.IsDir() {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			if path != root && w.shouldSkipDir(d.Name(), excludes) {
				return filepath.SkipDir
			}
			if hasIgnoreMarker(path) {
				return filepath.SkipDir
			}

			found, err := hasManifest(path)
			if err != nil {
				return err
			}
			if !found {
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return filepath.SkipDir
		})
		if err != nil {
			yield("", err)
		}
	}
}

// shouldSkipDir checks the name-based rules for a directory below the root.
func (w *Walker) shouldSkipDir(name string, excludes []string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}

	for _, pattern := range excludes {
		// Patterns were validated before the walk started.
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}

	return false
}

// hasIgnoreMarker reports whether dir holds one of the ignore markers.
// A marker that cannot be checked counts as absent.
func hasIgnoreMarker(dir string) bool {
	for _, marker := range domain.IgnoreMarkers() {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func hasManifest(dir string) (bool, error) {
	path := filepath.Join(dir, domain.ManifestFileName)
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", path)
	}
}
