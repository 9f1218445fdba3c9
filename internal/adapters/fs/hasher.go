package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/wsprune/internal/core/domain"
	"go.trai.ch/wsprune/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes fingerprints of package sets.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// Fingerprint computes a single hash over the identity, the declared
// dependencies and the manifest content of every package in pkgs.
// Packages are hashed in (name, path) order.
func (h *Hasher) Fingerprint(pkgs []domain.Package) (string, error) {
	sorted := slices.Clone(pkgs)
	slices.SortFunc(sorted, domain.ComparePackages)

	hasher := xxhash.New()
	for _, p := range sorted {
		h.hashPackage(p, hasher)

		if err := h.hashManifest(p.Path, hasher); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "package", p.Name.String())
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hashPackage hashes the package's name, path and dependencies.
func (h *Hasher) hashPackage(p domain.Package, hasher *xxhash.Digest) {
	_, _ = hasher.WriteString(p.Name.String())
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(p.Path)
	_, _ = hasher.Write([]byte{0})

	for _, dep := range p.Deps {
		_, _ = hasher.WriteString(dep.Type.String())
		_, _ = hasher.Write([]byte{':'})
		_, _ = hasher.WriteString(dep.Name.String())
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator
}

func (h *Hasher) hashManifest(dir string, mainHasher io.Writer) error {
	hash, err := h.ComputeFileHash(filepath.Join(dir, domain.ManifestFileName))
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
