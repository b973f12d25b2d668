// Package config loads eon settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. EON_OUTPUT_DIR.
const EnvPrefix = "EON"

// Config is the full eon configuration.
type Config struct {
	// Manifest is the package metadata file stamped into artifacts.
	Manifest   string           `mapstructure:"manifest"`
	Output     OutputConfig     `mapstructure:"output"`
	Validation ValidationConfig `mapstructure:"validation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Inject     InjectConfig     `mapstructure:"inject"`
	TUI        TUIConfig        `mapstructure:"tui"`

	// Source is the config file that was read, empty when defaults were used.
	Source string `mapstructure:"-"`
}

// OutputConfig controls where artifacts are written.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// ValidationConfig controls pre-export checks.
type ValidationConfig struct {
	// StrictGroups also requires every color to be in exactly one group.
	StrictGroups bool `mapstructure:"strict_groups"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// InjectConfig controls the HTML style injector.
type InjectConfig struct {
	StyleID string `mapstructure:"style_id"`
}

// TUIConfig controls terminal output.
type TUIConfig struct {
	Theme string `mapstructure:"theme"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Manifest: "package.json",
		Output: OutputConfig{
			Dir: "dist",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Inject: InjectConfig{
			StyleID: "eon-styles",
		},
		TUI: TUIConfig{
			Theme: "default",
		},
	}
}

// Load reads configuration. An explicit path must exist; without one, eon.yaml
// is looked up in the working directory and ~/.config/eon and may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("eon")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			v.AddConfigPath(filepath.Join(home, ".config", "eon"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Manifest) == "" {
		return errors.New("config manifest is required")
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return errors.New("config output.dir is required")
	}
	if strings.TrimSpace(c.Inject.StyleID) == "" {
		return errors.New("config inject.style_id is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("manifest", d.Manifest)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("validation.strict_groups", d.Validation.StrictGroups)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("inject.style_id", d.Inject.StyleID)
	v.SetDefault("tui.theme", d.TUI.Theme)
}
