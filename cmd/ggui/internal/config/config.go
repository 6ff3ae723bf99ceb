// Package config loads the ggui CLI settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. GGUI_SKIN_PATH.
const EnvPrefix = "GGUI"

// Config holds the CLI settings.
type Config struct {
	Skin   SkinConfig   `mapstructure:"skin"`
	Screen ScreenConfig `mapstructure:"screen"`
	Loop   LoopConfig   `mapstructure:"loop"`
	Log    LogConfig    `mapstructure:"log"`
	Render RenderConfig `mapstructure:"render"`
	Debug  DebugConfig  `mapstructure:"debug"`
}

// SkinConfig selects the skin asset.
type SkinConfig struct {
	// Path of a YAML skin asset. Empty uses the baseline skin.
	Path string `mapstructure:"path"`
}

// ScreenConfig holds layout settings.
type ScreenConfig struct {
	// BaseHeight is the height at which auto-scaled fonts keep their size.
	BaseHeight float64 `mapstructure:"base_height"`
}

// LoopConfig holds engine loop settings.
type LoopConfig struct {
	Tick time.Duration `mapstructure:"tick"`
}

// LogConfig holds diagnostics settings.
type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// RenderConfig holds settings of the render command.
type RenderConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Output string  `mapstructure:"output"`
}

// DebugConfig holds settings of the demo's inspection server.
type DebugConfig struct {
	// Addr is the listen address of the debug server. Empty disables it.
	Addr string `mapstructure:"addr"`
}

// New returns a viper instance with defaults, the optional config file and
// environment overrides wired up. path selects the config file; when empty
// GGUI_CONFIG is used, then ./ggui.yaml if present.
func New(path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("skin.path", "")
	v.SetDefault("screen.base_height", 720)
	v.SetDefault("loop.tick", "16ms")
	v.SetDefault("log.verbose", false)
	v.SetDefault("render.width", 1280)
	v.SetDefault("render.height", 720)
	v.SetDefault("render.output", "ggui.png")
	v.SetDefault("debug.addr", "")

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("ggui")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Decode unmarshals v into a Config.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Loop.Tick <= 0 {
		return Config{}, fmt.Errorf("loop.tick must be positive (got %s)", c.Loop.Tick)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return Config{}, fmt.Errorf("render size must be positive (got %gx%g)", c.Render.Width, c.Render.Height)
	}
	return c, nil
}

// Load reads the configuration from path (see New).
func Load(path string) (Config, error) {
	v, err := New(path)
	if err != nil {
		return Config{}, err
	}
	return Decode(v)
}
