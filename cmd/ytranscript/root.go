package main

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ytranscript/internal/logging"
	"ytranscript/internal/services"
	"ytranscript/internal/transcript"
)

// errReported signals that the failure was already written to stdout as a
// record; main exits 1 without printing it again.
var errReported = errors.New("failure already reported")

func newRootCommand() *cobra.Command {
	var configFlag string
	var langFlag []string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &langFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "ytranscript <video_id>",
		Short:         "Fetch a YouTube transcript as JSON",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
				if err := writeRecord(cmd, transcript.MissingArgument()); err != nil {
					return err
				}
				return errReported
			}
			return runFetch(cmd, ctx, args[0], args[1:])
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if cmd != rootCmd {
			return err
		}
		if werr := writeRecord(cmd, transcript.Unexpected("", err)); werr != nil {
			return werr
		}
		return errReported
	})

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format (console, json)")
	rootCmd.Flags().StringSliceVarP(&langFlag, "lang", "l", nil, "Preferred transcript languages, in order (repeatable or comma separated)")

	rootCmd.AddCommand(newLanguagesCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runFetch(cmd *cobra.Command, ctx *commandContext, videoID string, extra []string) error {
	preflight := func(err error) error {
		if werr := writeRecord(cmd, transcript.Unexpected(videoID, err)); werr != nil {
			return werr
		}
		return errReported
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return preflight(err)
	}
	logger, err := ctx.newLogger(cmd, cfg)
	if err != nil {
		return preflight(err)
	}
	preferences, err := ctx.preferences(cfg)
	if err != nil {
		return preflight(err)
	}
	client, err := ctx.newClient(cfg, logger)
	if err != nil {
		return preflight(err)
	}

	runCtx := services.WithRequestID(services.WithVideoID(cmd.Context(), videoID), uuid.NewString())
	runLogger := logging.WithContext(runCtx, logger)
	if len(extra) > 0 {
		runLogger.Debug("ignoring extra arguments", logging.Strings("args", extra))
	}
	runLogger.Debug("fetching transcript", logging.Strings("preferences", preferences))

	result := transcript.NewFetcher(client, logger).Fetch(runCtx, videoID, preferences)
	return writeRecord(cmd, result)
}
