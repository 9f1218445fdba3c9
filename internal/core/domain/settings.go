package domain

// Settings are the values a configuration file can provide.
// Zero-valued fields mean "not set".
type Settings struct {
	// Source is the file the settings were read from, empty for defaults.
	Source     string
	Upstream   string
	Workspaces []string
	Packages   []string
	Types      []DepType
	Action     Action
	Format     ReportFormat
	Exclude    []string
}

// ConfigFileName is the settings file looked for in the working directory and its parents.
const ConfigFileName = "wsprune.yaml"

// ConfigVersion is the settings file version this build understands.
const ConfigVersion = "1"
