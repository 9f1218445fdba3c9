package fs_test

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsprune/internal/adapters/fs"
	"go.trai.ch/wsprune/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "src", "app"), "app", "lib")
	writeManifest(t, filepath.Join(root, "src", "lib"), "lib")
	writeManifest(t, filepath.Join(root, "vendor", "old"), "old")

	scanner := fs.NewScanner(fs.NewWalker())

	pkgs, err := scanner.Scan(context.Background(), root, []string{"vendor"})
	require.NoError(t, err)

	slices.SortFunc(pkgs, domain.ComparePackages)
	assert.Equal(t, []domain.Package{
		domain.NewPackage("app", filepath.Join(root, "src", "app"),
			domain.NewDependency("lib", domain.DepTypeAll)),
		domain.NewPackage("lib", filepath.Join(root, "src", "lib")),
	}, pkgs)
}

func TestScanner_Scan_Empty(t *testing.T) {
	pkgs, err := fs.NewScanner(fs.NewWalker()).Scan(context.Background(), t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestScanner_Scan_InvalidManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "good"), "good")
	broken := filepath.Join(root, "broken", domain.ManifestFileName)
	writeFile(t, broken, "<package><version>1</version></package>")

	pkgs, err := fs.NewScanner(fs.NewWalker()).Scan(context.Background(), root, nil)
	require.Error(t, err)
	assert.Nil(t, pkgs)
	assert.ErrorContains(t, err, domain.ErrManifestMissingName.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, broken, zErr.Metadata()["path"])
}
