package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// DepType classifies the phase a declared dependency applies to.
// The zero value is DepTypeAll.
type DepType uint8

const (
	// DepTypeAll is the wildcard type, declared by the plain <depend> tag.
	DepTypeAll DepType = iota
	// DepTypeBuild is declared by <build_depend>.
	DepTypeBuild
	// DepTypeExec is declared by <exec_depend>.
	DepTypeExec
	// DepTypeTest is declared by <test_depend>.
	DepTypeTest
)

var depTypeNames = [...]string{
	DepTypeAll:   "all",
	DepTypeBuild: "build",
	DepTypeExec:  "exec",
	DepTypeTest:  "test",
}

// DepTypes returns every dependency type in order.
func DepTypes() []DepType {
	return []DepType{DepTypeAll, DepTypeBuild, DepTypeExec, DepTypeTest}
}

// Matches reports whether two dependency types are compatible.
// DepTypeAll is compatible with every type in both directions.
func (t DepType) Matches(other DepType) bool {
	return t == DepTypeAll || other == DepTypeAll || t == other
}

func (t DepType) valid() bool {
	return int(t) < len(depTypeNames)
}

// String returns the lower-case name of the type.
func (t DepType) String() string {
	if t.valid() {
		return depTypeNames[t]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (t DepType) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, zerr.With(ErrInvalidDepType, "type", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DepType) UnmarshalText(text []byte) error {
	parsed, err := ParseDepType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseDepType parses a dependency type name, ignoring case and surrounding space.
func ParseDepType(s string) (DepType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range depTypeNames {
		if n == name {
			return DepType(i), nil
		}
	}
	return DepTypeAll, zerr.With(ErrInvalidDepType, "type", s)
}

// ParseDepTypes parses every name in names. The result keeps the input order
// and may contain duplicates.
func ParseDepTypes(names []string) ([]DepType, error) {
	if len(names) == 0 {
		return nil, nil
	}
	types := make([]DepType, 0, len(names))
	for _, n := range names {
		t, err := ParseDepType(n)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// CompactDepTypes returns a sorted copy of types without duplicates.
func CompactDepTypes(types []DepType) []DepType {
	if len(types) == 0 {
		return nil
	}
	sorted := slices.Clone(types)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
