// Package config provides the settings file loader for wsprune.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/wsprune/internal/core/domain"
	"go.trai.ch/wsprune/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest settings file starting at cwd and reads it.
// Empty settings are returned when there is none.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		return &domain.Settings{}, nil
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the settings file at configPath. Relative paths in the
// file are resolved against the directory holding it.
func (l *Loader) LoadFile(configPath string) (*domain.Settings, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "path", configPath)
	}

	var prunefile Prunefile
	if err := readAndUnmarshalYAML(absPath, &prunefile); err != nil {
		return nil, zerr.With(err, "path", absPath)
	}

	if prunefile.Version != "" && prunefile.Version != domain.ConfigVersion {
		l.Logger.Warn("unsupported config version " + prunefile.Version + " in " + absPath +
			", reading it as version " + domain.ConfigVersion)
	}

	settings, err := buildSettings(absPath, &prunefile)
	if err != nil {
		return nil, zerr.With(err, "path", absPath)
	}
	return settings, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func buildSettings(configPath string, prunefile *Prunefile) (*domain.Settings, error) {
	if len(prunefile.Workspaces) > 0 && len(prunefile.Packages) > 0 {
		return nil, domain.ErrConflictingTargets
	}

	types, err := domain.ParseDepTypes(prunefile.Types)
	if err != nil {
		return nil, err
	}

	settings := &domain.Settings{
		Source:     configPath,
		Workspaces: resolvePaths(configPath, prunefile.Workspaces),
		Packages:   prunefile.Packages,
		Types:      types,
		Exclude:    prunefile.Exclude,
	}

	if prunefile.Upstream != "" {
		settings.Upstream = resolvePath(configPath, prunefile.Upstream)
	}

	if prunefile.Action != "" {
		if settings.Action, err = domain.ParseAction(prunefile.Action); err != nil {
			return nil, err
		}
	}

	if prunefile.Format != "" {
		if settings.Format, err = domain.ParseReportFormat(prunefile.Format); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

func resolvePaths(configPath string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	res := make([]string, len(paths))
	for i, p := range paths {
		res[i] = resolvePath(configPath, p)
	}
	return res
}

func resolvePath(configPath, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(configPath), configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
// Unknown keys are rejected and an empty file leaves target untouched.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
