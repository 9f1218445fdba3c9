package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wsprune/internal/core/domain"
)

func TestFilter_AcceptAll(t *testing.T) {
	f := domain.AcceptAll()

	for _, typ := range domain.DepTypes() {
		assert.True(t, f.Accepts(domain.NewDependency("x", typ)))
	}
	assert.True(t, f.AcceptsAll())
	assert.Nil(t, f.Types())
	assert.Equal(t, "any", f.String())
}

func TestFilter_MatchTypes(t *testing.T) {
	t.Run("empty request rejects everything", func(t *testing.T) {
		f := domain.MatchTypes()
		for _, typ := range domain.DepTypes() {
			assert.False(t, f.Accepts(domain.NewDependency("x", typ)), "type %s", typ)
		}
		assert.False(t, f.AcceptsAll())
		assert.Equal(t, "none", f.String())
	})

	t.Run("zero value rejects everything", func(t *testing.T) {
		var f domain.Filter
		assert.False(t, f.Accepts(domain.NewDependency("x", domain.DepTypeAll)))
	})

	t.Run("build only", func(t *testing.T) {
		f := domain.MatchTypes(domain.DepTypeBuild)
		assert.True(t, f.Accepts(domain.NewDependency("x", domain.DepTypeBuild)))
		assert.True(t, f.Accepts(domain.NewDependency("x", domain.DepTypeAll)))
		assert.False(t, f.Accepts(domain.NewDependency("x", domain.DepTypeExec)))
		assert.False(t, f.Accepts(domain.NewDependency("x", domain.DepTypeTest)))
	})

	t.Run("all requested accepts everything", func(t *testing.T) {
		f := domain.MatchTypes(domain.DepTypeAll)
		for _, typ := range domain.DepTypes() {
			assert.True(t, f.Accepts(domain.NewDependency("x", typ)))
		}
	})

	t.Run("duplicates and order do not matter", func(t *testing.T) {
		assert.Equal(t, domain.MatchTypes(domain.DepTypeBuild), domain.MatchTypes(domain.DepTypeBuild, domain.DepTypeBuild))
		assert.Equal(t,
			domain.MatchTypes(domain.DepTypeExec, domain.DepTypeBuild),
			domain.MatchTypes(domain.DepTypeBuild, domain.DepTypeExec),
		)
		assert.Equal(t, "build,exec", domain.MatchTypes(domain.DepTypeExec, domain.DepTypeBuild).String())
	})
}

func TestSelectFilter(t *testing.T) {
	assert.Equal(t, domain.AcceptAll(), domain.SelectFilter(nil))
	assert.Equal(t, domain.AcceptAll(), domain.SelectFilter([]domain.DepType{}))
	assert.Equal(t,
		domain.MatchTypes(domain.DepTypeTest),
		domain.SelectFilter([]domain.DepType{domain.DepTypeTest}),
	)
}

func TestFilter_AcceptsAgreesWithMatches(t *testing.T) {
	all := domain.DepTypes()

	for subset := range 1 << len(all) {
		var requested []domain.DepType
		for i, typ := range all {
			if subset&(1<<i) != 0 {
				requested = append(requested, typ)
			}
		}
		f := domain.MatchTypes(requested...)

		for _, depType := range all {
			want := false
			for _, r := range requested {
				if r.Matches(depType) {
					want = true
				}
			}
			assert.Equal(t, want, f.Accepts(domain.NewDependency("x", depType)),
				"requested %v, dependency type %s", requested, depType)
		}
	}
}

func TestFilter_UnknownTypes(t *testing.T) {
	unknown := domain.DepType(9)

	assert.Equal(t, domain.MatchTypes(), domain.MatchTypes(unknown))
	assert.Equal(t, domain.MatchTypes(domain.DepTypeBuild), domain.MatchTypes(domain.DepTypeBuild, domain.DepType(200)))

	dep := domain.NewDependency("x", unknown)
	assert.False(t, domain.MatchTypes(domain.DepTypeBuild).Accepts(dep))
	assert.True(t, domain.MatchTypes(domain.DepTypeAll).Accepts(dep))
	assert.False(t, domain.MatchTypes().Accepts(dep))
}
