package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

const minPollInterval = time.Second

// Validate checks that the configuration can drive the widget
func (c *Config) Validate() error {
	if err := validateURL("stream_url", c.StreamURL); err != nil {
		return err
	}
	if err := validateURL("server_url", c.ServerURL); err != nil {
		return err
	}
	if c.PollInterval.Duration < minPollInterval {
		return fmt.Errorf("%w: poll_interval must be at least %s, got %s",
			ErrInvalidConfig, minPollInterval, c.PollInterval.Duration)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if len(c.Player.Args) > 0 && c.Player.Command == "" {
		return fmt.Errorf("%w: player.args requires player.command", ErrInvalidConfig)
	}
	return nil
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %s must be an http(s) URL, got %q", ErrInvalidConfig, field, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %s has no host", ErrInvalidConfig, field)
	}
	return nil
}
