package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/mmr-tortoise/rfcs/internal/model"
)

// Config represents the complete rfcs configuration.
type Config struct {
	Git  GitConfig  `mapstructure:"git"`
	Scan ScanConfig `mapstructure:"scan"`
}

// GitConfig controls how the repository checkout is resolved.
// At least one of Repo or URL must be set before list/create can run;
// Repo wins when both are present.
type GitConfig struct {
	// Repo is the path to an existing local checkout of the RFC repository.
	Repo string `mapstructure:"repo"`

	// URL is a git clone URL. When only URL is set, the repository is
	// cloned once into the config directory and reused afterwards.
	URL string `mapstructure:"url"`
}

// ScanConfig controls document scanning behavior.
type ScanConfig struct {
	// Recursive controls whether the document scanner descends into
	// subdirectories of the repository (default: true). Set to false for
	// repositories that keep all RFCs at the top level.
	Recursive bool `mapstructure:"recursive"`
}

// knownKeys maps every settable configuration key to the kind of value
// it accepts. Unknown keys are rejected by Set with a message naming
// the valid ones.
var knownKeys = map[string]string{
	"git.repo":       "path",
	"git.url":        "string",
	"scan.recursive": "bool",
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Git: GitConfig{},
		Scan: ScanConfig{
			Recursive: true,
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("git.repo", defaults.Git.Repo)
	viper.SetDefault("git.url", defaults.Git.URL)
	viper.SetDefault("scan.recursive", defaults.Scan.Recursive)
}

// Init points viper at the config file and reads it if present.
// A missing config file is not an error — the tool runs on defaults
// until the user runs `rfcs configure`.
func Init() error {
	SetDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(ConfigDir())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return nil
		}
		return model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read config file from %s", ConfigFile()), err)
	}
	return nil
}

// Load reads the configuration from viper into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError, "invalid configuration", err)
	}
	return &cfg, nil
}

// Set validates and sets a single configuration key, then persists the
// config file.
//
// Key validation happens here rather than in the CLI layer so that every
// caller gets the same known-key check and the same error message.
func Set(key, value string) error {
	kind, ok := knownKeys[key]
	if !ok {
		return model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("unknown configuration key %q, known keys: %s",
				key, strings.Join(KnownKeys(), ", ")))
	}

	switch kind {
	case "bool":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("value for %s must be true or false, got %q", key, value), err)
		}
		viper.Set(key, parsed)
	case "path":
		// Store paths in absolute form so later invocations from other
		// working directories resolve the same checkout.
		abs, err := filepath.Abs(value)
		if err != nil {
			return model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("cannot resolve %q into a file path", value), err)
		}
		viper.Set(key, abs)
	default:
		viper.Set(key, value)
	}

	return Save()
}

// Save writes the current configuration to the config file, creating the
// config directory if needed.
func Save() error {
	if err := os.MkdirAll(ConfigDir(), 0755); err != nil {
		return model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to create config directory %s", ConfigDir()), err)
	}
	if err := viper.WriteConfigAs(ConfigFile()); err != nil {
		return model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to write config file %s", ConfigFile()), err)
	}
	return nil
}

// KnownKeys returns the settable configuration keys, sorted.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for key := range knownKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first.
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rfcs")
	}
	// Fall back to ~/.config/rfcs.
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rfcs"
	}
	return filepath.Join(home, ".config", "rfcs")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}
