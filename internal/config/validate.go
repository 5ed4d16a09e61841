package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMusicBrainz(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMusicBrainz() error {
	parsed, err := url.Parse(c.MusicBrainz.BaseURL)
	if err != nil {
		return fmt.Errorf("musicbrainz.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("musicbrainz.base_url must be an http(s) url, got %q", c.MusicBrainz.BaseURL)
	}
	if c.MusicBrainz.RequestDelayMS < 0 {
		return errors.New("musicbrainz.request_delay_ms must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
