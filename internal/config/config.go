package config

import (
	"embed"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/matheuskafuri/wikiscroll/internal/wiki"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const appName = "wikiscroll"

type Config struct {
	Language       string  `yaml:"language"`
	BatchSize      int     `yaml:"batch_size"`
	Prefetch       int     `yaml:"prefetch"`
	RequestTimeout string  `yaml:"request_timeout"`
	RateLimit      float64 `yaml:"rate_limit"`
	RateBurst      int     `yaml:"rate_burst"`
	Link           string  `yaml:"link"`
	Endpoint       string  `yaml:"endpoint"`
	UserAgent      string  `yaml:"user_agent,omitempty"`
	LogLevel       string  `yaml:"log_level"`
}

// Lang returns the configured edition, defaulting to Korean.
func (c *Config) Lang() wiki.Language {
	l, err := wiki.ParseLanguage(c.Language)
	if err != nil {
		return wiki.DefaultLanguage
	}
	return l
}

func (c *Config) GetBatchSize() int {
	if c.BatchSize <= 0 {
		return 5
	}
	return c.BatchSize
}

func (c *Config) GetPrefetch() int {
	if c.Prefetch < 0 {
		return 0
	}
	return c.Prefetch
}

func (c *Config) RequestTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

func (c *Config) LinkVariant() wiki.LinkVariant {
	if c.Link == string(wiki.LinkDesktop) {
		return wiki.LinkDesktop
	}
	return wiki.LinkMobile
}

func (c *Config) GetEndpoint() string {
	if c.Endpoint == "" {
		return wiki.DefaultEndpoint
	}
	return c.Endpoint
}

// SlogLevel maps log_level to a slog level; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

func LogPath() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config file at path (or the default location), layering it
// over the embedded defaults, then applies environment overrides. A .env file
// in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	// Missing .env is the common case.
	_ = godotenv.Load()

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Non-fatal: just use embedded defaults
		_ = writeDefaults(path)
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WIKISCROLL_LANG"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("WIKISCROLL_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if _, err := wiki.ParseLanguage(cfg.Language); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	if cfg.BatchSize < 0 {
		return fmt.Errorf("batch_size: must be positive, got %d", cfg.BatchSize)
	}
	if cfg.Prefetch < 0 {
		return fmt.Errorf("prefetch: must not be negative, got %d", cfg.Prefetch)
	}
	if cfg.RateLimit < 0 {
		return fmt.Errorf("rate_limit: must not be negative, got %v", cfg.RateLimit)
	}
	if cfg.RateBurst < 0 {
		return fmt.Errorf("rate_burst: must not be negative, got %d", cfg.RateBurst)
	}
	if cfg.RequestTimeout != "" {
		if _, err := time.ParseDuration(cfg.RequestTimeout); err != nil {
			return fmt.Errorf("request_timeout: %w", err)
		}
	}
	if cfg.Link != "" && cfg.Link != string(wiki.LinkMobile) && cfg.Link != string(wiki.LinkDesktop) {
		return fmt.Errorf("link: unknown variant %q (valid: mobile, desktop)", cfg.Link)
	}
	if cfg.Endpoint != "" {
		u, err := url.Parse(strings.ReplaceAll(cfg.Endpoint, "{lang}", "en"))
		if err != nil {
			return fmt.Errorf("endpoint: invalid url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("endpoint: url scheme must be http or https, got %q", u.Scheme)
		}
	}
	return nil
}
