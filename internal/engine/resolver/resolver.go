// Package resolver finds the packages of an upstream pool that a set of kept
// packages does not need.
package resolver

import (
	"go.trai.ch/wsprune/internal/core/domain"
)

// FindUnused returns the upstream packages that are not reachable from the
// dependencies of kept through edges accepted by filter.
//
// Kept packages are never returned, even when the same (name, path) also
// appears in upstream. Reachability is by name: every upstream package with a
// reached name counts as used, and dependency names that are not in upstream
// end the walk silently.
//
// The result preserves upstream order and holds clones, so callers may
// mutate or act on it without touching the inputs. It is never nil.
func FindUnused(kept, upstream []domain.Package, filter domain.Filter) []domain.Package {
	keptKeys := make(map[domain.PackageKey]struct{}, len(kept))
	var roots []domain.InternedString
	for _, p := range kept {
		keptKeys[p.Key()] = struct{}{}
		for dep := range p.Dependencies(filter) {
			roots = append(roots, dep.Name)
		}
	}

	// candidates maps a name to the indices of the upstream packages carrying it.
	// A name leaves the map the first time it is reached.
	candidates := make(map[domain.InternedString][]int, len(upstream))
	for i, p := range upstream {
		if _, ok := keptKeys[p.Key()]; ok {
			continue
		}
		candidates[p.Name] = append(candidates[p.Name], i)
	}

	sweep(candidates, upstream, roots, filter)

	unused := make([]bool, len(upstream))
	n := 0
	for _, idxs := range candidates {
		for _, i := range idxs {
			unused[i] = true
			n++
		}
	}

	result := make([]domain.Package, 0, n)
	for i, p := range upstream {
		if unused[i] {
			result = append(result, p.Clone())
		}
	}
	return result
}

// sweep deletes every name reachable from roots from candidates.
// Each name is expanded at most once.
func sweep(
	candidates map[domain.InternedString][]int,
	upstream []domain.Package,
	roots []domain.InternedString,
	filter domain.Filter,
) {
	stack := roots
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idxs, ok := candidates[name]
		if !ok {
			continue
		}
		delete(candidates, name)

		for _, i := range idxs {
			for dep := range upstream[i].Dependencies(filter) {
				if _, pending := candidates[dep.Name]; pending {
					stack = append(stack, dep.Name)
				}
			}
		}
	}
}
