package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/birthday-surprise/constants"
)

// EnvPrefix prefixes every environment override, e.g. BIRTHDAY_RECIPIENT_NAME
const EnvPrefix = "BIRTHDAY"

// Color modes
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config holds all runtime settings
// The greeting sequence and its timings are fixed and not part of it
type Config struct {
	Recipient RecipientConfig `mapstructure:"recipient"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Render    RenderConfig    `mapstructure:"render"`
	Logger    LoggerConfig    `mapstructure:"logger"`
}

// RecipientConfig names the person being celebrated
type RecipientConfig struct {
	Name string `mapstructure:"name"`
	Age  int    `mapstructure:"age"`
}

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// RenderConfig holds terminal output settings
type RenderConfig struct {
	FPS   int    `mapstructure:"fps"`
	Color string `mapstructure:"color"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from defaults, an optional YAML file and BIRTHDAY_* environment variables
// An empty path skips the file; a given path must exist
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults always validate unless the environment is broken
		return &Config{
			Recipient: RecipientConfig{Name: constants.DefaultRecipientName, Age: constants.DefaultRecipientAge},
			Audio:     AudioConfig{Enabled: true, Volume: 0.6},
			Render:    RenderConfig{FPS: 60, Color: ColorAuto},
			Logger:    LoggerConfig{Dir: "logs", Level: "info"},
		}
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("recipient.name", constants.DefaultRecipientName)
	v.SetDefault("recipient.age", constants.DefaultRecipientAge)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.6)

	v.SetDefault("render.fps", 60)
	v.SetDefault("render.color", ColorAuto)

	v.SetDefault("logger.debug", false)
	v.SetDefault("logger.dir", "logs")
	v.SetDefault("logger.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Recipient.Name) == "" {
		return errors.New("recipient.name is required")
	}
	if c.Recipient.Age < 0 {
		return fmt.Errorf("recipient.age must not be negative, got %d", c.Recipient.Age)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	}
	if c.Render.FPS < constants.MinFPS || c.Render.FPS > constants.MaxFPS {
		return fmt.Errorf("render.fps must be within [%d, %d], got %d", constants.MinFPS, constants.MaxFPS, c.Render.FPS)
	}
	switch c.Render.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("render.color must be one of auto, truecolor, 256, got %q", c.Render.Color)
	}
	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logger.level must be one of debug, info, warn, error, got %q", c.Logger.Level)
	}
	if c.Logger.Debug && c.Logger.Dir == "" {
		return errors.New("logger.dir is required when debug logging is on")
	}
	return nil
}

// FrameInterval returns the render tick for the configured frame rate
func (c *Config) FrameInterval() time.Duration {
	if c.Render.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Render.FPS)
}
