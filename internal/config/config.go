package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultStreamURL    = "http://139.140.232.18:8000/WBOR"
	DefaultServerURL    = "http://wbor.org"
	DefaultPollInterval = 60 * time.Second
	DefaultCacheBust    = "ModPagespeed=noscript"
	DefaultLogLevel     = "info"

	// CacheBustOff disables the cache-busting query parameter
	CacheBustOff = "off"
)

// Duration is a time.Duration read from strings like "60s" or "2m"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds application configuration
type Config struct {
	StreamURL    string   `toml:"stream_url"`
	ServerURL    string   `toml:"server_url"`
	PollInterval Duration `toml:"poll_interval"`
	CacheBust    string   `toml:"cache_bust"`

	Player PlayerConfig `toml:"player"`
	Log    LogConfig    `toml:"log"`

	Headless     bool `toml:"headless"`
	Autostart    bool `toml:"autostart"`
	DisableMPRIS bool `toml:"disable_mpris"`
}

// PlayerConfig selects the external stream player
type PlayerConfig struct {
	// Command overrides player detection (e.g. "mpv")
	Command string `toml:"command"`
	// Args replaces the default arguments; "%s" is the stream URL
	Args []string `toml:"args"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level string `toml:"level"`
	// File receives logs in TUI mode
	File string `toml:"file"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads configuration from standard locations with environment overrides.
// Search order: $XDG_CONFIG_HOME/onair/config.toml, ~/.config/onair/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	if path := findConfigFile(); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// ApplyDefaults fills in zero values
func (c *Config) ApplyDefaults() {
	if c.StreamURL == "" {
		c.StreamURL = DefaultStreamURL
	}
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.PollInterval.Duration == 0 {
		c.PollInterval.Duration = DefaultPollInterval
	}
	if c.CacheBust == "" {
		c.CacheBust = DefaultCacheBust
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.File == "" {
		c.Log.File = defaultLogFile()
	}
}

// InfoURL returns the now-playing endpoint including the cache-busting parameter
func (c *Config) InfoURL() string {
	u := strings.TrimRight(c.ServerURL, "/") + "/updateinfo"
	if c.CacheBust != "" && c.CacheBust != CacheBustOff {
		u += "?" + c.CacheBust
	}
	return u
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	var candidates []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, "onair", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "onair", "config.toml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "onair", "onair.log")
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ONAIR_STREAM_URL"); v != "" {
		cfg.StreamURL = v
	}
	if v := os.Getenv("ONAIR_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("ONAIR_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PollInterval.Duration = d
		} else if secs, err := strconv.Atoi(v); err == nil {
			cfg.PollInterval.Duration = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("ONAIR_CACHE_BUST"); v != "" {
		cfg.CacheBust = v
	}
	if v := os.Getenv("ONAIR_PLAYER"); v != "" {
		cfg.Player.Command = v
	}
	if v := os.Getenv("ONAIR_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ONAIR_LOG_FILE"); v != "" {
		// Expand path if it contains ~ or environment variables
		v = os.ExpandEnv(v)
		if strings.HasPrefix(v, "~") {
			if home, err := os.UserHomeDir(); err == nil {
				v = filepath.Join(home, v[1:])
			}
		}
		cfg.Log.File = v
	}
}
