package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/itsmostafa/foldertree/internal/ctxlog"
)

// DefaultScriptName is the file name of the generated folder script.
const DefaultScriptName = "GENERATE-FOLDERS.bat"

// Theme names accepted by the config file and the theme command.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ErrInvalidTheme is returned when the theme is neither dark nor light.
var ErrInvalidTheme = errors.New("invalid theme")

// Config holds the foldertree configuration
type Config struct {
	Theme      string      `toml:"theme"`
	LogLevel   string      `toml:"log_level"`
	ScriptName string      `toml:"script_name"`
	OutputDir  string      `toml:"output_dir"`
	Serve      ServeConfig `toml:"serve"`
}

// ServeConfig holds settings for the HTTP server
type ServeConfig struct {
	Addr         string   `toml:"addr"`
	MaxBodyBytes int64    `toml:"max_body_bytes"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath returns the config file location: $FOLDERTREE_CONFIG if set,
// otherwise foldertree/config.toml under the user config directory.
func DefaultPath() string {
	if p := os.Getenv("FOLDERTREE_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "foldertree.toml"
	}
	return filepath.Join(dir, "foldertree", "config.toml")
}

// Load reads the TOML file at path. A missing file is not an error; the
// defaults are used instead. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the TOML file at path and applies defaults, without
// environment overrides or validation. Use it when the file is going to be
// written back with Save.
func LoadFile(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config to path as TOML, creating parent directories.
func (c *Config) Save(path string) error {
	path = os.ExpandEnv(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks enum-valued fields.
func (c *Config) Validate() error {
	if _, err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	if _, err := ctxlog.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.ScriptName == "" || c.ScriptName != filepath.Base(c.ScriptName) {
		return fmt.Errorf("invalid script_name: %q", c.ScriptName)
	}
	return nil
}

// ValidateTheme checks if the given theme name is valid
func ValidateTheme(theme string) (string, error) {
	switch theme {
	case ThemeDark, ThemeLight:
		return theme, nil
	default:
		return "", fmt.Errorf("%w: %q (valid options: dark, light)", ErrInvalidTheme, theme)
	}
}

func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = ThemeDark
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.ScriptName == "" {
		c.ScriptName = DefaultScriptName
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = ":8080"
	}
	if c.Serve.MaxBodyBytes <= 0 {
		c.Serve.MaxBodyBytes = 1 << 20 // 1MB
	}
	if c.Serve.ReadTimeout.Duration <= 0 {
		c.Serve.ReadTimeout.Duration = 10 * time.Second
	}
	if c.Serve.WriteTimeout.Duration <= 0 {
		c.Serve.WriteTimeout.Duration = 10 * time.Second
	}
}

func (c *Config) applyEnv() {
	c.Theme = envOr("FOLDERTREE_THEME", c.Theme)
	c.LogLevel = envOr("FOLDERTREE_LOG_LEVEL", c.LogLevel)
	c.OutputDir = envOr("FOLDERTREE_OUTPUT_DIR", c.OutputDir)
	c.Serve.Addr = envOr("FOLDERTREE_ADDR", c.Serve.Addr)
	c.Serve.MaxBodyBytes = envInt64("FOLDERTREE_MAX_BODY_BYTES", c.Serve.MaxBodyBytes)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
