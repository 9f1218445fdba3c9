// Package manifest parses package.xml descriptors into packages.
package manifest

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.trai.ch/wsprune/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/net/html/charset"
)

// MaxManifestSize is the number of bytes read from a manifest file.
// A document that does not end within the limit fails to parse.
const MaxManifestSize = 1 << 20

const rootElement = "package"

// Manifest is the part of a package.xml the resolver needs.
type Manifest struct {
	Name string
	Deps []domain.Dependency
}

// Package turns the manifest into a package located at dir.
func (m *Manifest) Package(dir string) domain.Package {
	return domain.Package{
		Name: domain.NewInternedString(m.Name),
		Path: dir,
		Deps: m.Deps,
	}
}

// dependencyTags maps the recognized dependency elements to their type.
var dependencyTags = map[string]domain.DepType{
	"depend":       domain.DepTypeAll,
	"build_depend": domain.DepTypeBuild,
	"exec_depend":  domain.DepTypeExec,
	"test_depend":  domain.DepTypeTest,
}

// ParseFile reads and parses the manifest at path.
func ParseFile(path string) (*Manifest, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the directory scan
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	m, err := Parse(io.LimitReader(f, MaxManifestSize))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return m, nil
}

// Parse reads a manifest document from r.
//
// The root element must be <package>. Among its direct children, <name> must
// appear exactly once and the dependency elements may appear any number of
// times. Recognized elements must be leaves with non-empty text. Everything
// else is skipped. Documents declaring a non UTF-8 encoding are decoded first.
func Parse(r io.Reader) (*Manifest, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	root, err := findRoot(dec)
	if err != nil {
		return nil, err
	}
	if root.Name.Local != rootElement {
		return nil, zerr.With(domain.ErrManifestInvalidRoot, "element", root.Name.Local)
	}

	m := &Manifest{}
	hasName := false
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, malformed(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			tag := t.Name.Local
			depType, isDep := dependencyTags[tag]
			if tag != "name" && !isDep {
				if err := dec.Skip(); err != nil {
					return nil, malformed(err)
				}
				continue
			}

			text, err := leafText(dec, tag)
			if err != nil {
				return nil, err
			}

			if isDep {
				m.Deps = append(m.Deps, domain.NewDependency(text, depType))
				continue
			}
			if hasName {
				return nil, domain.ErrManifestDuplicateName
			}
			m.Name = text
			hasName = true

		case xml.EndElement:
			// The decoder checks nesting, so this closes the root.
			if !hasName {
				return nil, domain.ErrManifestMissingName
			}
			return m, nil
		}
	}
}

// findRoot skips the prolog and returns the first element.
func findRoot(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, domain.ErrManifestMissingRoot
		}
		if err != nil {
			return xml.StartElement{}, malformed(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) > 0 {
				return xml.StartElement{}, zerr.With(domain.ErrManifestMissingRoot, "text", truncate(string(t)))
			}
		}
	}
}

// leafText collects the text of the element just opened, up to its end tag.
func leafText(dec *xml.Decoder, tag string) (string, error) {
	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", malformed(err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			err := zerr.With(domain.ErrManifestNestedElement, "element", tag)
			return "", zerr.With(err, "child", t.Name.Local)
		case xml.EndElement:
			text := strings.TrimSpace(sb.String())
			if text == "" {
				return "", zerr.With(domain.ErrManifestEmptyElement, "element", tag)
			}
			return text, nil
		}
	}
}

func malformed(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return zerr.Wrap(err, domain.ErrManifestMalformed.Error())
}

func truncate(s string) string {
	const limit = 32
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
