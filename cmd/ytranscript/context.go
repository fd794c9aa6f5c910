package main

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"ytranscript/internal/config"
	"ytranscript/internal/language"
	"ytranscript/internal/logging"
	"ytranscript/internal/services"
	"ytranscript/internal/youtube"
)

type commandContext struct {
	configFlag    *string
	langFlag      *[]string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag *string, langFlag *[]string, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		langFlag:      langFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "load", "", err)
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// preferences returns the --lang codes when given, else the configured list.
func (c *commandContext) preferences(cfg *config.Config) ([]string, error) {
	var codes []string
	if c.langFlag != nil {
		codes = language.SplitList(*c.langFlag)
	}
	if len(codes) == 0 {
		return append([]string(nil), cfg.Transcript.Languages...), nil
	}
	for _, code := range codes {
		if err := language.Validate(code); err != nil {
			return nil, services.Wrap(services.ErrValidation, "cli", "lang", "", err)
		}
	}
	return codes, nil
}

func (c *commandContext) newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr(), flagValue(c.logLevelFlag), flagValue(c.logFormatFlag))
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "logging", "init", "", err)
	}
	return logger, nil
}

func (c *commandContext) newClient(cfg *config.Config, logger *slog.Logger) (*youtube.Client, error) {
	client, err := youtube.New(youtube.Config{
		BaseURL:       cfg.YouTube.BaseURL,
		ClientVersion: cfg.YouTube.ClientVersion,
		UserAgent:     cfg.YouTube.UserAgent,
		Hl:            cfg.YouTube.Hl,
		Gl:            cfg.YouTube.Gl,
		HTTPClient:    &http.Client{Timeout: cfg.HTTPTimeout()},
		Logger:        logger,
	})
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "youtube", "init", "", err)
	}
	return client, nil
}

func flagValue(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
