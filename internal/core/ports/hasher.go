package ports

import "go.trai.ch/wsprune/internal/core/domain"

// Hasher defines the interface for computing fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint computes a stable digest of a package set. The order of pkgs
	// does not matter.
	Fingerprint(pkgs []domain.Package) (string, error)
}
