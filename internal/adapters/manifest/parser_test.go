package manifest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsprune/internal/adapters/manifest"
	"go.trai.ch/wsprune/internal/core/domain"
	"go.trai.ch/zerr"
)

const fullManifest = `<?xml version="1.0"?>
<?xml-model href="http://download.ros.org/schema/package_format3.xsd" schematypens="http://www.w3.org/2001/XMLSchema"?>
<package format="3">
  <name>zzz_package</name>
  <version>1.0.0</version>
  <description>This is a cmake package</description>
  <maintainer email="foo@bar.com">Foo Bar</maintainer>
  <license>MIT</license>

  <buildtool_depend>ament_cmake</buildtool_depend>

  <depend>dep1</depend>
  <build_depend>build_dep1</build_depend>
  <depend>dep2</depend>
  <test_depend>test_dep1</test_depend>
  <exec_depend condition="$ROS_VERSION == 2">exec_dep1</exec_depend>
  <build_depend>build_dep2</build_depend>

  <export>
    <build_type>ament_cmake</build_type>
  </export>
</package>
`

func TestParse_FullManifest(t *testing.T) {
	m, err := manifest.Parse(strings.NewReader(fullManifest))
	require.NoError(t, err)

	assert.Equal(t, "zzz_package", m.Name)
	assert.Equal(t, []domain.Dependency{
		domain.NewDependency("dep1", domain.DepTypeAll),
		domain.NewDependency("build_dep1", domain.DepTypeBuild),
		domain.NewDependency("dep2", domain.DepTypeAll),
		domain.NewDependency("test_dep1", domain.DepTypeTest),
		domain.NewDependency("exec_dep1", domain.DepTypeExec),
		domain.NewDependency("build_dep2", domain.DepTypeBuild),
	}, m.Deps, "declaration order must be preserved")
}

func TestParse_NoDependencies(t *testing.T) {
	m, err := manifest.Parse(strings.NewReader(`<package>
  <name>
    spaced_name
  </name>
  <buildtool_depend>ament_cmake</buildtool_depend>
  <export><build_type>ament_cmake</build_type></export>
</package>`))
	require.NoError(t, err)

	assert.Equal(t, "spaced_name", m.Name)
	assert.Empty(t, m.Deps)
}

func TestParse_TrailingContentIgnored(t *testing.T) {
	m, err := manifest.Parse(strings.NewReader(`<package><name>a</name></package><!-- done -->`))
	require.NoError(t, err)
	assert.Equal(t, "a", m.Name)
}

func TestParse_DeclaredEncoding(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<package format=\"3\"><name>caf\xe9_msgs</name><depend>rclcpp</depend></package>"

	m, err := manifest.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "café_msgs", m.Name)
	assert.Equal(t, []domain.Dependency{domain.NewDependency("rclcpp", domain.DepTypeAll)}, m.Deps)
}

func TestParse_TextBeforeRootIsCutOnRuneBoundary(t *testing.T) {
	_, err := manifest.Parse(strings.NewReader("a" + strings.Repeat("é", 20)))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestMissingRoot.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)

	text, ok := zErr.Metadata()["text"].(string)
	require.True(t, ok)
	assert.True(t, utf8.ValidString(text), "text %q is not valid UTF-8", text)
	assert.Equal(t, "a"+strings.Repeat("é", 15)+"...", text)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "empty document",
			doc:     "",
			wantErr: domain.ErrManifestMissingRoot,
		},
		{
			name:    "plain text",
			doc:     "nothing",
			wantErr: domain.ErrManifestMissingRoot,
		},
		{
			name: "text and stray closing tag",
			doc: `<?xml version="1.0"?>
            farts
            </package>`,
			wantErr: domain.ErrManifestMissingRoot,
		},
		{
			name:    "wrong root",
			doc:     `<manifest><name>a</name></manifest>`,
			wantErr: domain.ErrManifestInvalidRoot,
		},
		{
			name:    "missing name",
			doc:     `<package><depend>a</depend></package>`,
			wantErr: domain.ErrManifestMissingName,
		},
		{
			name:    "name only nested deeper",
			doc:     `<package><export><name>a</name></export></package>`,
			wantErr: domain.ErrManifestMissingName,
		},
		{
			name:    "duplicate name",
			doc:     `<package><name>a</name><name>b</name></package>`,
			wantErr: domain.ErrManifestDuplicateName,
		},
		{
			name:    "nested element in name",
			doc:     `<package><name><b>a</b></name></package>`,
			wantErr: domain.ErrManifestNestedElement,
		},
		{
			name:    "nested element in depend",
			doc:     `<package><name>a</name><depend>x<sub/></depend></package>`,
			wantErr: domain.ErrManifestNestedElement,
		},
		{
			name:    "empty name",
			doc:     `<package><name>  </name></package>`,
			wantErr: domain.ErrManifestEmptyElement,
		},
		{
			name:    "empty dependency",
			doc:     `<package><name>a</name><exec_depend/></package>`,
			wantErr: domain.ErrManifestEmptyElement,
		},
		{
			name:    "mismatched close",
			doc:     `<package><name>a</nam></package>`,
			wantErr: domain.ErrManifestMalformed,
		},
		{
			name:    "unterminated root",
			doc:     `<package><name>a</name>`,
			wantErr: domain.ErrManifestMalformed,
		},
		{
			name:    "broken unknown element",
			doc:     `<package><name>a</name><export><x></export></package>`,
			wantErr: domain.ErrManifestMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestParse_NestedElementMetadata(t *testing.T) {
	_, err := manifest.Parse(strings.NewReader(`<package><name>a</name><depend><x/></depend></package>`))
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)

	meta := zErr.Metadata()
	assert.Equal(t, "depend", meta["element"])
	assert.Equal(t, "x", meta["child"])
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("parses file and builds package", func(t *testing.T) {
		path := filepath.Join(dir, "package.xml")
		require.NoError(t, os.WriteFile(path, []byte(fullManifest), 0o600))

		m, err := manifest.ParseFile(path)
		require.NoError(t, err)

		p := m.Package(dir)
		assert.Equal(t, "zzz_package", p.Name.String())
		assert.Equal(t, dir, p.Path)
		assert.Len(t, p.Deps, 6)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(dir, "missing.xml")
		_, err := manifest.ParseFile(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrManifestOpenFailed.Error())

		zErr, ok := err.(*zerr.Error)
		require.True(t, ok, "expected *zerr.Error, got %T", err)
		assert.Equal(t, path, zErr.Metadata()["path"])
	})

	t.Run("parse errors carry the path", func(t *testing.T) {
		path := filepath.Join(dir, "broken.xml")
		require.NoError(t, os.WriteFile(path, []byte(`<package></package>`), 0o600))

		_, err := manifest.ParseFile(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrManifestMissingName.Error())

		zErr, ok := err.(*zerr.Error)
		require.True(t, ok, "expected *zerr.Error, got %T", err)
		assert.Equal(t, path, zErr.Metadata()["path"])
	})

	t.Run("oversized document is cut at the limit", func(t *testing.T) {
		path := filepath.Join(dir, "huge.xml")
		doc := "<package><name>big</name><!--" +
			strings.Repeat("x", manifest.MaxManifestSize) +
			"--></package>"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		_, err := manifest.ParseFile(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrManifestMalformed.Error())
	})

	t.Run("trailing padding past the limit is harmless", func(t *testing.T) {
		path := filepath.Join(dir, "padded.xml")
		doc := "<package><name>padded</name></package>" + strings.Repeat(" ", manifest.MaxManifestSize)
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		m, err := manifest.ParseFile(path)
		require.NoError(t, err)
		assert.Equal(t, "padded", m.Name)
	})
}
