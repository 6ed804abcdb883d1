package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Transition selects what moves the app from the splash to the main window.
type Transition string

const (
	// TransitionHandshake waits for the splash content and the main
	// window's ready-to-show signal.
	TransitionHandshake Transition = "handshake"
	// TransitionDelay waits a fixed settle delay after the splash content
	// has loaded.
	TransitionDelay Transition = "delay"
)

const (
	EnvPrefix          = "SPLASHKIT"
	DefaultTransition  = TransitionHandshake
	DefaultSettleDelay = 2 * time.Second
)

// WindowConfig describes one window: what it loads and how it looks.
type WindowConfig struct {
	ToLoad  Descriptor `mapstructure:"to_load"`
	Options Options    `mapstructure:"options"`
}

// Config is the construction input of the coordinator.
type Config struct {
	MainWindow   WindowConfig  `mapstructure:"main_window"`
	SplashWindow WindowConfig  `mapstructure:"splash_window"`
	Transition   Transition    `mapstructure:"transition"`
	SettleDelay  time.Duration `mapstructure:"settle_delay"`
	// BaseDir anchors relative file descriptors. Empty means the directory
	// of the running executable.
	BaseDir string `mapstructure:"base_dir"`
}

// Validate checks both descriptors and the transition mode.
func (c Config) Validate() error {
	if err := c.MainWindow.ToLoad.Validate(); err != nil {
		return fmt.Errorf("main_window.to_load: %w", err)
	}
	if err := c.SplashWindow.ToLoad.Validate(); err != nil {
		return fmt.Errorf("splash_window.to_load: %w", err)
	}
	switch c.Transition {
	case "", TransitionHandshake, TransitionDelay:
	default:
		return fmt.Errorf("%w: transition %q", ErrInvalidArgument, c.Transition)
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("%w: negative settle_delay %s", ErrInvalidArgument, c.SettleDelay)
	}
	return nil
}

// Load reads the configuration at path. Any format viper understands
// (toml, json, yaml) is accepted, and SPLASHKIT_* environment variables
// override file values. An empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("transition", string(DefaultTransition))
	v.SetDefault("settle_delay", DefaultSettleDelay)
	v.SetDefault("base_dir", "")
	v.SetDefault("main_window.to_load.type", "")
	v.SetDefault("main_window.to_load.value", "")
	v.SetDefault("splash_window.to_load.type", "")
	v.SetDefault("splash_window.to_load.value", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	// A relative base_dir is taken relative to the config file.
	if cfg.BaseDir != "" && !filepath.IsAbs(cfg.BaseDir) && path != "" {
		cfg.BaseDir = filepath.Join(filepath.Dir(path), cfg.BaseDir)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
