// Config loading for the contacts CLI.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "CONTACTS"

	// Config keys; CONTACTS_<KEY> overrides each one.
	cfgKeyBackend   = "backend"
	cfgKeyLogLevel  = "log_level"
	cfgKeySeparator = "separator"
)

// flagKeys maps persistent flag names to the config key they override.
var flagKeys = map[string]string{
	"backend":   cfgKeyBackend,
	"log-level": cfgKeyLogLevel,
}

// loadConfig resolves the session configuration. Precedence, highest first:
// flags, CONTACTS_* env vars, config.yaml in the config directory, defaults.
// A missing config directory or config.yaml is not an error, and nothing is
// ever written.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.DefaultBackend)
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetDefault(cfgKeySeparator, types.DefaultSeparator)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := cmd.Root().PersistentFlags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return types.Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	// An unresolvable default directory (no home) only means there is no
	// config file to read.
	if configDir, err := paths.ResolveConfigDir(flags.configDir); err == nil {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(configDir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return types.Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := types.Config{
		Backend:   strings.ToLower(v.GetString(cfgKeyBackend)),
		LogLevel:  strings.ToLower(v.GetString(cfgKeyLogLevel)),
		Separator: v.GetString(cfgKeySeparator),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
