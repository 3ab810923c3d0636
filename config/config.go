package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/lotsize/i18n"
	"github.com/rustyeddy/lotsize/market"
)

// Environment variables that override file settings.
const (
	EnvAddr        = "LOTSIZE_ADDR"
	EnvPrefsDB     = "LOTSIZE_PREFS_DB"
	EnvDefaultLang = "LOTSIZE_DEFAULT_LANG"
)

// Config is the complete calculator configuration.
type Config struct {
	Server      ServerConfig   `json:"server" yaml:"server"`
	UI          UIConfig       `json:"ui" yaml:"ui"`
	Prefs       PrefsConfig    `json:"prefs" yaml:"prefs"`
	Instruments market.Catalog `json:"instruments" yaml:"instruments"`
}

// ServerConfig contains HTTP server parameters
type ServerConfig struct {
	Addr             string `json:"addr" yaml:"addr"`
	CalculationDelay string `json:"calculation_delay" yaml:"calculation_delay"` // e.g. "1s", "0s" disables
	DisableMetrics   bool   `json:"disable_metrics,omitempty" yaml:"disable_metrics,omitempty"`
}

// Delay converts CalculationDelay to a time.Duration.
func (s ServerConfig) Delay() (time.Duration, error) {
	if s.CalculationDelay == "" {
		return 0, nil
	}
	return time.ParseDuration(s.CalculationDelay)
}

// UIConfig holds the defaults used before a visitor picks anything.
type UIConfig struct {
	DefaultLang  string `json:"default_lang" yaml:"default_lang"`
	DefaultTheme string `json:"default_theme" yaml:"default_theme"`
}

// PrefsConfig selects where preference flags are kept.
type PrefsConfig struct {
	Type   string `json:"type" yaml:"type"` // "memory" or "sqlite"
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON).
// Sections missing from the file keep their defaults; an instruments
// section replaces the built-in catalog entirely.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Load reads path when it is set and returns Default otherwise. Env
// overrides are applied in both cases.
func Load(path string) (*Config, error) {
	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config after env overrides: %w", err)
	}
	return cfg, nil
}

// LoadEnvFile loads variables from a .env file. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPrefsDB)); v != "" {
		c.Prefs.Type = "sqlite"
		c.Prefs.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDefaultLang)); v != "" {
		c.UI.DefaultLang = v
	}
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	d, err := c.Server.Delay()
	if err != nil {
		return fmt.Errorf("server.calculation_delay: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("server.calculation_delay must not be negative")
	}
	if !i18n.IsSupported(i18n.Lang(c.UI.DefaultLang)) {
		return fmt.Errorf("ui.default_lang %q is not supported (want one of %v)", c.UI.DefaultLang, i18n.Supported())
	}
	if c.UI.DefaultTheme != "light" && c.UI.DefaultTheme != "dark" {
		return fmt.Errorf("ui.default_theme must be 'light' or 'dark'")
	}
	if c.Prefs.Type != "memory" && c.Prefs.Type != "sqlite" {
		return fmt.Errorf("prefs.type must be 'memory' or 'sqlite'")
	}
	if c.Prefs.Type == "sqlite" && c.Prefs.DBPath == "" {
		return fmt.Errorf("prefs db_path required for SQLite type")
	}
	if err := c.Instruments.Validate(); err != nil {
		return fmt.Errorf("instruments: %w", err)
	}
	return nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Server.CalculationDelay == "" {
		c.Server.CalculationDelay = def.Server.CalculationDelay
	}
	if c.UI.DefaultLang == "" {
		c.UI.DefaultLang = def.UI.DefaultLang
	}
	if c.UI.DefaultTheme == "" {
		c.UI.DefaultTheme = def.UI.DefaultTheme
	}
	if c.Prefs.Type == "" {
		c.Prefs.Type = def.Prefs.Type
	}
	if c.Instruments == nil {
		c.Instruments = def.Instruments
	}
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:             ":8080",
			CalculationDelay: "1s",
		},
		UI: UIConfig{
			DefaultLang:  string(i18n.Default),
			DefaultTheme: "light",
		},
		Prefs: PrefsConfig{
			Type: "memory",
		},
		Instruments: market.DefaultCatalog(),
	}
}
