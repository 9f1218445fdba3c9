package config

// Prunefile represents the structure of the wsprune.yaml configuration file.
type Prunefile struct {
	Version    string   `yaml:"version"`
	Upstream   string   `yaml:"upstream"`
	Workspaces []string `yaml:"workspaces"`
	Packages   []string `yaml:"packages"`
	Types      []string `yaml:"types"`
	Action     string   `yaml:"action"`
	Format     string   `yaml:"format"`
	Exclude    []string `yaml:"exclude"`
}
