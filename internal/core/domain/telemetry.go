package domain

// LogLevel represents the severity of a phase log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	if l >= LogLevelWarn {
		return "WARN"
	}
	return "INFO"
}
