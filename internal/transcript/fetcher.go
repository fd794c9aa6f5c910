package transcript

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"ytranscript/internal/config"
	"ytranscript/internal/logging"
	"ytranscript/internal/services"
	"ytranscript/internal/youtube"
)

// Source lists and downloads caption tracks. *youtube.Client implements it.
type Source interface {
	ListTranscripts(ctx context.Context, videoID string) (*youtube.TranscriptList, error)
	FetchFragments(ctx context.Context, t youtube.Transcript) ([]youtube.Fragment, error)
}

// Fetcher resolves a video id to a single Result.
type Fetcher struct {
	source Source
	logger *slog.Logger
}

// NewFetcher constructs a Fetcher. A nil logger discards output.
func NewFetcher(source Source, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		source: source,
		logger: logging.NewComponentLogger(logger, "transcript"),
	}
}

// Fetch returns the transcript of videoID in the first available language of
// preferences, or in any available language when none of them match. Empty
// preferences use the default list. videoID is echoed in the Result as given.
func (f *Fetcher) Fetch(ctx context.Context, videoID string, preferences []string) Result {
	if strings.TrimSpace(videoID) == "" {
		return MissingArgument()
	}
	if f == nil || f.source == nil {
		return Unexpected(videoID, errors.New("transcript source is not configured"))
	}
	if len(preferences) == 0 {
		preferences = config.DefaultLanguages()
	}
	ctx = services.WithVideoID(ctx, videoID)
	logger := logging.WithContext(ctx, f.logger)

	list, err := f.source.ListTranscripts(ctx, videoID)
	if err != nil {
		return f.classify(logger, videoID, err)
	}

	selected, err := selectTranscript(list, preferences)
	if err != nil {
		return f.classify(logger, videoID, err)
	}
	logger.Debug("transcript selected",
		logging.String(logging.FieldLanguage, selected.LanguageCode),
		logging.Bool("generated", selected.Generated),
		logging.Strings("preferences", preferences),
	)

	fragments, err := f.source.FetchFragments(ctx, selected)
	if err != nil {
		return f.classify(logger, videoID, err)
	}
	logger.Info("transcript fetched",
		logging.String(logging.FieldLanguage, selected.LanguageCode),
		logging.Int("fragments", len(fragments)),
	)
	return Success(videoID, selected.LanguageCode, JoinFragments(fragments))
}

// selectTranscript tries each preferred code on its own, then lets the
// catalog pick from everything it has.
func selectTranscript(list *youtube.TranscriptList, preferences []string) (youtube.Transcript, error) {
	for _, code := range preferences {
		if t, err := list.FindTranscript([]string{code}); err == nil {
			return t, nil
		} else if !errors.Is(err, youtube.ErrNoTranscriptFound) {
			return youtube.Transcript{}, err
		}
	}
	return list.FindTranscript(list.AvailableLanguages())
}

func (f *Fetcher) classify(logger *slog.Logger, videoID string, err error) Result {
	switch {
	case errors.Is(err, youtube.ErrInvalidVideoID):
		return MissingArgument()
	case errors.Is(err, youtube.ErrTranscriptsDisabled):
		logger.Info("transcripts disabled", logging.Error(err))
		return TranscriptsDisabled(videoID)
	case errors.Is(err, youtube.ErrNoTranscriptFound):
		logger.Info("no transcript found", logging.Error(err))
		return NoTranscriptFound(videoID)
	default:
		logger.Warn("transcript fetch failed", logging.Error(err))
		return Unexpected(videoID, err)
	}
}

// JoinFragments concatenates fragment texts with single spaces, in order.
func JoinFragments(fragments []youtube.Fragment) string {
	texts := make([]string, len(fragments))
	for i, fragment := range fragments {
		texts[i] = fragment.Text
	}
	return strings.Join(texts, " ")
}
