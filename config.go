package panel

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config defaults.
const (
	DefaultWidth      = 480
	DefaultHeight     = 320
	DefaultFPS        = 30
	DefaultBrightness = 1.0
)

// Config holds the settings a panel program needs at startup. Values come
// from defaults, then a YAML/TOML/JSON file, then PANEL_* environment
// variables (dashes become underscores: PANEL_REMOTE_ADDR).
type Config struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	FPS    int `mapstructure:"fps"`

	// Display selects the sink: memory, terminal, framebuffer or window.
	Display           string  `mapstructure:"display"`
	FramebufferDevice string  `mapstructure:"framebuffer-device"`
	Brightness        float64 `mapstructure:"brightness"`
	WindowScale       int     `mapstructure:"window-scale"`

	Theme     string `mapstructure:"theme"`      // built-in theme name
	ThemeFile string `mapstructure:"theme-file"` // YAML theme, overrides Theme
	FontFile  string `mapstructure:"font-file"`  // empty loads Go Regular

	ScreenshotDir string `mapstructure:"screenshot-dir"`
	TestScript    string `mapstructure:"test-script"`
	RemoteAddr    string `mapstructure:"remote-addr"` // empty disables the HTTP API

	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log-level"`
}

// LoadConfig reads configuration from path (optional) and the environment.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix("PANEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("width", DefaultWidth)
	v.SetDefault("height", DefaultHeight)
	v.SetDefault("fps", DefaultFPS)
	v.SetDefault("display", "memory")
	v.SetDefault("framebuffer-device", "/dev/fb1")
	v.SetDefault("brightness", DefaultBrightness)
	v.SetDefault("window-scale", 2)
	v.SetDefault("theme", "dark")
	v.SetDefault("theme-file", "")
	v.SetDefault("font-file", "")
	v.SetDefault("screenshot-dir", "screenshots")
	v.SetDefault("test-script", "")
	v.SetDefault("remote-addr", "")
	v.SetDefault("debug", false)
	v.SetDefault("log-level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var configFileNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings no display can honor.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: display size %dx%d must be positive", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps %d: %w", c.FPS, ErrInvalidFPS)
	}
	if c.Brightness < 0 || c.Brightness > 1 {
		return fmt.Errorf("config: brightness %v must be within [0, 1]", c.Brightness)
	}
	switch c.Display {
	case "memory", "terminal", "framebuffer", "window":
	default:
		return fmt.Errorf("config: unknown display %q", c.Display)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// LoadTheme resolves the configured theme: ThemeFile when set, otherwise the
// built-in theme named by Theme.
func (c Config) LoadTheme() (Theme, error) {
	if c.ThemeFile != "" {
		return LoadThemeFile(c.ThemeFile)
	}
	return ThemeByName(c.Theme), nil
}

// LoadFonts resolves the configured font table.
func (c Config) LoadFonts() (FontTable, error) {
	if c.FontFile == "" {
		return LoadFonts(nil)
	}
	data, err := os.ReadFile(c.FontFile)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return LoadFonts(data)
}
