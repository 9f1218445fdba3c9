package ports

import (
	"context"

	"go.trai.ch/wsprune/internal/core/domain"
)

// Pruner applies an action to a set of packages.
//
//go:generate mockgen -source=pruner.go -destination=mocks/mock_pruner.go -package=mocks
type Pruner interface {
	// Apply performs action on every package in pkgs, stopping at the first failure.
	Apply(ctx context.Context, action domain.Action, pkgs []domain.Package) error
}
