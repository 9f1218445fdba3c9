package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wsprune/internal/core/domain"
)

func TestPackage_Clone(t *testing.T) {
	orig := domain.NewPackage("a", "/ws/a", domain.NewDependency("b", domain.DepTypeBuild))

	clone := orig.Clone()
	clone.Deps[0] = domain.NewDependency("c", domain.DepTypeExec)

	assert.Equal(t, "b", orig.Deps[0].Name.String(), "clone must not share deps")
	assert.Equal(t, orig.Key(), clone.Key())
}

func TestPackage_Dependencies(t *testing.T) {
	p := domain.NewPackage("a", "/ws/a",
		domain.NewDependency("b", domain.DepTypeBuild),
		domain.NewDependency("c", domain.DepTypeExec),
		domain.NewDependency("d", domain.DepTypeAll),
	)

	var names []string
	for dep := range p.Dependencies(domain.MatchTypes(domain.DepTypeBuild)) {
		names = append(names, dep.Name.String())
	}
	assert.Equal(t, []string{"b", "d"}, names)

	names = names[:0]
	for dep := range p.Dependencies(domain.AcceptAll()) {
		names = append(names, dep.Name.String())
		if len(names) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"b", "c"}, names)
}

func TestPackage_String(t *testing.T) {
	p := domain.NewPackage("rclcpp", "/opt/ws/src/rclcpp")
	assert.Equal(t, "rclcpp (/opt/ws/src/rclcpp)", p.String())
}

func TestNormalizePackages(t *testing.T) {
	pkgs := []domain.Package{
		domain.NewPackage("b", "/2"),
		domain.NewPackage("a", "/2"),
		domain.NewPackage("b", "/1"),
		domain.NewPackage("a", "/2", domain.NewDependency("x", domain.DepTypeAll)),
	}

	got := domain.NormalizePackages(pkgs)

	keys := make([]domain.PackageKey, 0, len(got))
	for _, p := range got {
		keys = append(keys, p.Key())
	}
	assert.Equal(t, []domain.PackageKey{
		{Name: domain.NewInternedString("a"), Path: "/2"},
		{Name: domain.NewInternedString("b"), Path: "/1"},
		{Name: domain.NewInternedString("b"), Path: "/2"},
	}, keys)
	assert.True(t, slices.IsSortedFunc(got, domain.ComparePackages))
}
