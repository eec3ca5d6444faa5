// Package config loads nahw configuration with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	appName = "nahw"

	defaultTheme         = "default"
	defaultLogLevel      = "info"
	defaultAnimation     = 300 * time.Millisecond
	defaultPressDuration = 100 * time.Millisecond
)

// Config is the resolved application configuration.
type Config struct {
	// Theme names a built-in theme.
	Theme string `mapstructure:"theme"`
	// DarkMode is the initial theme flag used until one is stored.
	DarkMode bool `mapstructure:"dark_mode"`
	// DataDir holds the settings database and log file.
	DataDir string `mapstructure:"data_dir"`
	// PaletteFile optionally points at a TOML palette override.
	PaletteFile string          `mapstructure:"palette_file"`
	Log         LogConfig       `mapstructure:"log"`
	Animation   AnimationConfig `mapstructure:"animation"`
	Fonts       FontsConfig     `mapstructure:"fonts"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// AnimationConfig controls card transition timings.
type AnimationConfig struct {
	Duration      time.Duration `mapstructure:"duration"`
	PressDuration time.Duration `mapstructure:"press_duration"`
}

// FontsConfig lists directories scanned for installed fonts.
type FontsConfig struct {
	Dirs []string `mapstructure:"dirs"`
}

// DatabasePath returns the settings database location.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, appName+".db")
}

// LogPath returns the log file location used while the TUI runs.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, appName+".log")
}

// Validate checks values that would otherwise fail later.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir must not be empty")
	}
	if c.Animation.Duration <= 0 {
		return fmt.Errorf("animation.duration must be greater than 0, got %s", c.Animation.Duration)
	}
	if c.Animation.PressDuration <= 0 {
		return fmt.Errorf("animation.press_duration must be greater than 0, got %s", c.Animation.PressDuration)
	}
	return nil
}

// New returns a viper instance with defaults, env bindings and search paths.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("theme", defaultTheme)
	v.SetDefault("dark_mode", false)
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("palette_file", "")
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("animation.duration", defaultAnimation)
	v.SetDefault("animation.press_duration", defaultPressDuration)
	v.SetDefault("fonts.dirs", []string{})

	v.SetEnvPrefix("NAHW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, appName))
	}
	v.AddConfigPath(".")

	return v
}

// Load reads configuration. An explicit path must exist; otherwise a missing
// config file is not an error and defaults apply.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = New()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.PaletteFile = expandHome(cfg.PaletteFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", appName)
	}
	return filepath.Join(os.TempDir(), appName)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
