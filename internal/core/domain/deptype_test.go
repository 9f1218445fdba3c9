package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsprune/internal/core/domain"
)

func TestDepType_Matches(t *testing.T) {
	all := domain.DepTypes()

	for _, a := range all {
		for _, b := range all {
			want := a == domain.DepTypeAll || b == domain.DepTypeAll || a == b
			assert.Equal(t, want, a.Matches(b), "%s vs %s", a, b)
			assert.Equal(t, a.Matches(b), b.Matches(a), "matches must be symmetric for %s, %s", a, b)
		}
	}

	assert.False(t, domain.DepTypeBuild.Matches(domain.DepTypeExec))
	assert.True(t, domain.DepTypeTest.Matches(domain.DepTypeAll))
}

func TestParseDepType(t *testing.T) {
	tests := []struct {
		in   string
		want domain.DepType
	}{
		{"all", domain.DepTypeAll},
		{"build", domain.DepTypeBuild},
		{" Exec ", domain.DepTypeExec},
		{"TEST", domain.DepTypeTest},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseDepType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := domain.ParseDepType("runtime")
		require.ErrorContains(t, err, domain.ErrInvalidDepType.Error())
	})
}

func TestParseDepTypes(t *testing.T) {
	types, err := domain.ParseDepTypes([]string{"build", "test", "build"})
	require.NoError(t, err)
	assert.Equal(t, []domain.DepType{domain.DepTypeBuild, domain.DepTypeTest, domain.DepTypeBuild}, types)

	types, err = domain.ParseDepTypes(nil)
	require.NoError(t, err)
	assert.Nil(t, types)

	_, err = domain.ParseDepTypes([]string{"build", "nope"})
	require.ErrorContains(t, err, domain.ErrInvalidDepType.Error())
}

func TestCompactDepTypes(t *testing.T) {
	in := []domain.DepType{domain.DepTypeTest, domain.DepTypeBuild, domain.DepTypeTest}
	got := domain.CompactDepTypes(in)

	assert.Equal(t, []domain.DepType{domain.DepTypeBuild, domain.DepTypeTest}, got)
	assert.Equal(t, domain.DepTypeTest, in[0], "input must not be reordered")
}

func TestDepType_Text(t *testing.T) {
	text, err := domain.DepTypeExec.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "exec", string(text))

	var parsed domain.DepType
	require.NoError(t, parsed.UnmarshalText([]byte("build")))
	assert.Equal(t, domain.DepTypeBuild, parsed)

	require.ErrorContains(t, parsed.UnmarshalText([]byte("x")), domain.ErrInvalidDepType.Error())

	_, err = domain.DepType(42).MarshalText()
	require.ErrorContains(t, err, domain.ErrInvalidDepType.Error())
}
