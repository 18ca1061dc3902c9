// Package config loads the settings of the tuplemap command.
//
// Values are resolved in increasing priority: defaults, the config file
// (tuplemap.yaml in the working directory, or an explicit path), TUPLEMAP_*
// environment variables, then flags set on the command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "TUPLEMAP"
	ConfigName = "tuplemap"

	FormatYAML = "yaml"
	FormatJSON = "json"
)

var ErrInvalidConfig = errors.New("invalid configuration")

var keys = []string{"mapping", "input", "format", "log_level"}

// Config holds the resolved settings.
type Config struct {
	Mapping  string `mapstructure:"mapping"`
	Input    string `mapstructure:"input"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log_level"`
}

// Load resolves the configuration. An empty configFile searches the working
// directory for tuplemap.yaml and tolerates its absence. Only flags that were
// set explicitly in fs override other sources; fs may be nil.
func Load(configFile string, fs *flag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("format", FormatYAML)
	v.SetDefault("log_level", zerolog.InfoLevel.String())

	v.SetEnvPrefix(EnvPrefix)

	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if fs != nil {
		fs.Visit(func(f *flag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if slices.Contains(keys, key) {
				v.Set(key, f.Value.String())
			}
		})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the output format and the log level.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	if c.Format != FormatYAML && c.Format != FormatJSON {
		return fmt.Errorf("%w: format must be %q or %q, got %q", ErrInvalidConfig, FormatYAML, FormatJSON, c.Format)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return level, nil
}
