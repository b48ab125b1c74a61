package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	wmerrors "github.com/rawnly/worktree-manager/internal/errors"
	"github.com/rawnly/worktree-manager/internal/shell"
)

const (
	AppName    = "worktree-manager"
	EnvPrefix  = "WORKTREE_MANAGER"
	ConfigName = "config"
)

// Config represents the user configuration
type Config struct {
	GitBinary    string        `mapstructure:"git_binary"`
	RootMarker   string        `mapstructure:"root_marker"`
	Theme        string        `mapstructure:"theme"`
	DefaultShell shell.Dialect `mapstructure:"default_shell"`
	LogLevel     log.Level     `mapstructure:"log_level"`
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() *Config {
	return &Config{
		GitBinary:  "git",
		RootMarker: "@",
		Theme:      "catppuccin",
		LogLevel:   log.WarnLevel,
	}
}

// GetConfigDir returns the directory holding config.yaml
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Load reads configuration from path, or from the default config directory
// when path is empty. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := GetConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: reading config: %w", wmerrors.ErrConfigInvalid, err)
		}
	} else {
		log.Debug("loaded config", "file", v.ConfigFileUsed())
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("git_binary", d.GitBinary)
	v.SetDefault("root_marker", d.RootMarker)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("default_shell", "")
	v.SetDefault("log_level", d.LogLevel.String())
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := Default()

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		emptyDialectHook(),
		logLevelHook(),
		mapstructure.TextUnmarshallerHookFunc(),
	))

	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, fmt.Errorf("%w: %w", wmerrors.ErrConfigInvalid, err)
	}

	if cfg.GitBinary == "" {
		cfg.GitBinary = "git"
	}

	return cfg, nil
}

// emptyDialectHook maps an unset default_shell to the zero Dialect instead of
// letting ParseDialect reject the empty string.
func emptyDialectHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(shell.Dialect(0)) || from.Kind() != reflect.String {
			return data, nil
		}
		if s, _ := data.(string); s == "" {
			return shell.Dialect(0), nil
		}
		return data, nil
	}
}

func logLevelHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(log.Level(0)) || from.Kind() != reflect.String {
			return data, nil
		}
		return log.ParseLevel(data.(string))
	}
}
