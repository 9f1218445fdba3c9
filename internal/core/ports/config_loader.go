package ports

import "go.trai.ch/wsprune/internal/core/domain"

// ConfigLoader defines the interface for loading run settings from a file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load looks for the settings file in cwd and its parents.
	// It returns empty settings when no file is found.
	Load(cwd string) (*domain.Settings, error)

	// LoadFile reads the settings from an explicit path. A missing file is an error.
	LoadFile(path string) (*domain.Settings, error)
}
