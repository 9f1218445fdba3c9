package domain

import "strings"

// Filter decides which dependency edges are followed during resolution.
//
// A Filter is a comparable value. The zero value rejects every dependency;
// use AcceptAll for the unfiltered case.
type Filter struct {
	acceptAll bool
	mask      uint8
}

// AcceptAll returns the filter that accepts every dependency.
func AcceptAll() Filter {
	return Filter{acceptAll: true}
}

// MatchTypes returns a filter accepting a dependency when at least one of the
// requested types matches its type. Duplicates and order have no effect.
// With no requested types the filter rejects everything. Types outside the
// known set are ignored.
func MatchTypes(types ...DepType) Filter {
	var f Filter
	for _, t := range CompactDepTypes(types) {
		if !t.valid() {
			continue
		}
		f.mask |= 1 << t
	}
	return f
}

// SelectFilter picks the filter for a set of user-requested types:
// AcceptAll when nothing was requested, MatchTypes otherwise.
func SelectFilter(types []DepType) Filter {
	if len(types) == 0 {
		return AcceptAll()
	}
	return MatchTypes(types...)
}

// Accepts reports whether the dependency passes the filter.
func (f Filter) Accepts(dep Dependency) bool {
	if f.acceptAll {
		return true
	}
	if f.mask == 0 {
		return false
	}
	if dep.Type == DepTypeAll || f.mask&(1<<DepTypeAll) != 0 {
		return true
	}
	return dep.Type.valid() && f.mask&(1<<dep.Type) != 0
}

// AcceptsAll reports whether the filter is the unconditional one.
func (f Filter) AcceptsAll() bool {
	return f.acceptAll
}

// Types returns the requested types in order. It is nil for AcceptAll.
func (f Filter) Types() []DepType {
	var types []DepType
	for _, t := range DepTypes() {
		if f.mask&(1<<t) != 0 {
			types = append(types, t)
		}
	}
	return types
}

func (f Filter) String() string {
	if f.acceptAll {
		return "any"
	}
	types := f.Types()
	if len(types) == 0 {
		return "none"
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ",")
}
