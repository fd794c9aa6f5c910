package config

import (
	"errors"
	"fmt"
	"net/url"

	"ytranscript/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTranscript(); err != nil {
		return err
	}
	if err := c.validateYouTube(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTranscript() error {
	if len(c.Transcript.Languages) == 0 {
		return errors.New("transcript.languages must include at least one language")
	}
	for _, code := range c.Transcript.Languages {
		if err := language.Validate(code); err != nil {
			return fmt.Errorf("transcript.languages: %w", err)
		}
	}
	return nil
}

func (c *Config) validateYouTube() error {
	parsed, err := url.Parse(c.YouTube.BaseURL)
	if err != nil {
		return fmt.Errorf("youtube.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("youtube.base_url must be an absolute http(s) URL, got %q", c.YouTube.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("youtube.base_url must include a host, got %q", c.YouTube.BaseURL)
	}
	if c.YouTube.TimeoutSeconds < 0 {
		return errors.New("youtube.timeout_seconds must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
