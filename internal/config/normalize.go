package config

import (
	"strings"

	"ytranscript/internal/language"
)

func (c *Config) normalize() {
	c.normalizeTranscript()
	c.normalizeYouTube()
	c.normalizeLogging()
}

func (c *Config) normalizeTranscript() {
	langs := language.DedupeList(c.Transcript.Languages)
	if len(langs) == 0 {
		langs = DefaultLanguages()
	}
	c.Transcript.Languages = langs
}

func (c *Config) normalizeYouTube() {
	c.YouTube.BaseURL = strings.TrimRight(strings.TrimSpace(c.YouTube.BaseURL), "/")
	if c.YouTube.BaseURL == "" {
		c.YouTube.BaseURL = defaultYouTubeBaseURL
	}
	c.YouTube.ClientVersion = strings.TrimSpace(c.YouTube.ClientVersion)
	if c.YouTube.ClientVersion == "" {
		c.YouTube.ClientVersion = defaultClientVersion
	}
	c.YouTube.UserAgent = strings.TrimSpace(c.YouTube.UserAgent)
	if c.YouTube.UserAgent == "" {
		c.YouTube.UserAgent = defaultUserAgent
	}
	c.YouTube.Hl = strings.TrimSpace(c.YouTube.Hl)
	if c.YouTube.Hl == "" {
		c.YouTube.Hl = defaultHl
	}
	c.YouTube.Gl = strings.TrimSpace(c.YouTube.Gl)
	if c.YouTube.Gl == "" {
		c.YouTube.Gl = defaultGl
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
