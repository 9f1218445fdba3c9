package domain

import (
	"cmp"
	"iter"
	"slices"
)

// Dependency is one declared edge from a package to another package, named
// but not yet resolved.
type Dependency struct {
	Name InternedString
	Type DepType
}

// NewDependency creates a Dependency on the named package.
func NewDependency(name string, t DepType) Dependency {
	return Dependency{Name: NewInternedString(name), Type: t}
}

// Package is a package discovered on disk. Name and Path together identify it;
// Deps keeps the declaration order of the manifest.
type Package struct {
	Name InternedString
	Path string
	Deps []Dependency
}

// PackageKey is the identity of a package.
type PackageKey struct {
	Name InternedString
	Path string
}

// NewPackage creates a Package.
func NewPackage(name, path string, deps ...Dependency) Package {
	return Package{
		Name: NewInternedString(name),
		Path: path,
		Deps: deps,
	}
}

// Key returns the (name, path) identity of the package.
func (p Package) Key() PackageKey {
	return PackageKey{Name: p.Name, Path: p.Path}
}

// Clone returns a copy that shares no mutable state with p.
func (p Package) Clone() Package {
	return Package{
		Name: p.Name,
		Path: p.Path,
		Deps: slices.Clone(p.Deps),
	}
}

// Dependencies yields the dependencies that pass the filter, in declaration order.
func (p Package) Dependencies(f Filter) iter.Seq[Dependency] {
	return func(yield func(Dependency) bool) {
		for _, d := range p.Deps {
			if !f.Accepts(d) {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

func (p Package) String() string {
	return p.Name.String() + " (" + p.Path + ")"
}

// ComparePackages orders packages by name, then path.
func ComparePackages(a, b Package) int {
	return cmp.Or(
		cmp.Compare(a.Name.String(), b.Name.String()),
		cmp.Compare(a.Path, b.Path),
	)
}

// NormalizePackages sorts pkgs by (name, path) and drops repeated identities.
// The input slice is reordered in place; the returned slice aliases it.
func NormalizePackages(pkgs []Package) []Package {
	slices.SortStableFunc(pkgs, ComparePackages)
	return slices.CompactFunc(pkgs, func(a, b Package) bool {
		return a.Key() == b.Key()
	})
}
