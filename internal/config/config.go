package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/colorpass/colorpass-go/internal/crypto"
	"github.com/colorpass/colorpass-go/internal/palette"
)

var (
	ErrInvalidLength    = errors.New("default length must be between 6 and 32")
	ErrInvalidColor     = errors.New("default color is not in the palette")
	ErrInvalidRateLimit = errors.New("rate limit must be positive")
	ErrInvalidLogFormat = errors.New("log format must be text or json")
)

type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

type Config struct {
	Port       string           `toml:"port"`
	Env        string           `toml:"env"`
	Log        LogConfig        `toml:"log"`
	Generator  GeneratorConfig  `toml:"generator"`
	Background BackgroundConfig `toml:"background"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    LogFormat  `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

// GeneratorConfig is the initial state of the password generator view.
type GeneratorConfig struct {
	Length  int  `toml:"length"`
	Digits  bool `toml:"digits"`
	Symbols bool `toml:"symbols"`
}

// Options converts the config into generator options.
func (c GeneratorConfig) Options() crypto.GeneratorOptions {
	return crypto.GeneratorOptions{
		Length:  c.Length,
		Digits:  c.Digits,
		Symbols: c.Symbols,
	}
}

// BackgroundConfig is the initial state of the background switcher view.
type BackgroundConfig struct {
	Color string `toml:"color"`
}

type RateLimitConfig struct {
	RPS   float64 `toml:"rps"`
	Burst int     `toml:"burst"`
}

func defaultConfig() Config {
	defaults := crypto.DefaultOptions()
	return Config{
		Port: "8080",
		Env:  "development",
		Log: LogConfig{
			Level:  slog.LevelInfo,
			Format: LogFormatText,
		},
		Generator: GeneratorConfig{
			Length:  defaults.Length,
			Digits:  defaults.Digits,
			Symbols: defaults.Symbols,
		},
		Background: BackgroundConfig{
			Color: palette.Default.String(),
		},
		RateLimit: RateLimitConfig{
			RPS:   5,
			Burst: 10,
		},
	}
}

// Load builds the configuration from defaults, then the TOML file named by
// CONFIG_FILE (if any), then environment variables.
func Load() (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.Log.Format = LogFormat(getEnv("LOG_FORMAT", string(cfg.Log.Format)))
	cfg.Background.Color = getEnv("DEFAULT_COLOR", cfg.Background.Color)

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.Log.Level.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("parsing LOG_LEVEL: %w", err)
		}
	}

	var err error
	if cfg.Generator.Length, err = getEnvInt("DEFAULT_LENGTH", cfg.Generator.Length); err != nil {
		return err
	}
	if cfg.Generator.Digits, err = getEnvBool("DEFAULT_DIGITS", cfg.Generator.Digits); err != nil {
		return err
	}
	if cfg.Generator.Symbols, err = getEnvBool("DEFAULT_SYMBOLS", cfg.Generator.Symbols); err != nil {
		return err
	}
	if cfg.RateLimit.RPS, err = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimit.RPS); err != nil {
		return err
	}
	if cfg.RateLimit.Burst, err = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return err
	}
	return nil
}

// Validate rejects settings the views could never display.
func (c Config) Validate() error {
	if c.Generator.Length < crypto.MinLength || c.Generator.Length > crypto.MaxLength {
		return ErrInvalidLength
	}
	if _, err := palette.Parse(c.Background.Color); err != nil {
		return ErrInvalidColor
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return ErrInvalidRateLimit
	}
	if c.Log.Format != LogFormatText && c.Log.Format != LogFormatJSON {
		return ErrInvalidLogFormat
	}
	return nil
}

// InitialColor returns the configured starting background.
func (c Config) InitialColor() palette.Color {
	color, err := palette.Parse(c.Background.Color)
	if err != nil {
		return palette.Default
	}
	return color
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return f, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", key, err)
	}
	return b, nil
}
