package types

import "errors"

// Config holds backend selection and session options for the contacts
// program.
type Config struct {
	Backend   string `json:"backend" yaml:"backend" mapstructure:"backend"`
	LogLevel  string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Separator string `json:"separator" yaml:"separator" mapstructure:"separator"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Defaults applied when a value is not configured.
const (
	DefaultBackend   = BackendMemory
	DefaultLogLevel  = "warn"
	DefaultSeparator = "================================="
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendSQLite: true,
}

// knownLogLevels lists the log levels that Validate accepts. An empty level
// means DefaultLogLevel.
var knownLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
