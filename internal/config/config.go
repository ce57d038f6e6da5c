// Package config loads settings for the botbuilder command.
//
// Sources, highest precedence first: command-line flags, BOTBUILDER_*
// environment variables (including any loaded from a .env file), the YAML
// config file, then built-in defaults. The config file is either the path
// given with --config or ~/.botbuilder/config.yaml when it exists.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key to form its environment variable,
// e.g. BOTBUILDER_API_KEY.
const EnvPrefix = "BOTBUILDER"

// Output formats accepted by the output key.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the command configuration.
type Config struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	TimeoutSeconds int           `mapstructure:"timeout"`
	Timeout        time.Duration `mapstructure:"-"`
	LogLevel       string        `mapstructure:"log_level"`
	Output         string        `mapstructure:"output"`

	// ConfigFile is the config file that was read, or "".
	ConfigFile string `mapstructure:"-"`
}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile is an explicit config file path. It must exist.
	ConfigFile string
	// EnvFile is a dotenv file loaded into the environment if present.
	// Variables already set in the environment are not overwritten.
	EnvFile string
	// Flags are bound to their keys and win over every other source when
	// set on the command line.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"api-key":   "api_key",
	"base-url":  "base_url",
	"timeout":   "timeout",
	"log-level": "log_level",
	"output":    "output",
}

// Load reads configuration from all sources.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	ApplyDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", path, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(filepath.Join(home, ".botbuilder"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid timeout %d (must be positive seconds)", c.TimeoutSeconds)
	}
	c.Output = strings.ToLower(c.Output)
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q (want %s or %s)", c.Output, OutputJSON, OutputYAML)
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("base_url must not be empty")
	}
	return nil
}
