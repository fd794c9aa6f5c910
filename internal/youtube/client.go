package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"ytranscript/internal/language"
	"ytranscript/internal/logging"
)

const (
	defaultBaseURL       = "https://www.youtube.com"
	defaultClientVersion = "20.10.38"
	defaultHl            = "en"
	defaultGl            = "US"
	androidSDKVersion    = 30
	maxPlayerBody        = 4 << 20
	maxTimedTextBody     = 8 << 20
)

// Config describes the YouTube client configuration.
type Config struct {
	BaseURL       string
	ClientVersion string
	UserAgent     string
	Hl            string
	Gl            string
	HTTPClient    *http.Client
	Logger        *slog.Logger
}

// Client talks to the Innertube player endpoint and the timedtext service.
type Client struct {
	baseURL       *url.URL
	clientVersion string
	userAgent     string
	hl            string
	gl            string
	http          *http.Client
	logger        *slog.Logger
}

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("youtube: parse base url: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("youtube: base url %q must be absolute", base)
	}
	version := strings.TrimSpace(cfg.ClientVersion)
	if version == "" {
		version = defaultClientVersion
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = "com.google.android.youtube/" + version + " (Linux; U; Android 11) gzip"
	}
	hl := strings.TrimSpace(cfg.Hl)
	if hl == "" {
		hl = defaultHl
	}
	gl := strings.TrimSpace(cfg.Gl)
	if gl == "" {
		gl = defaultGl
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		baseURL:       baseURL,
		clientVersion: version,
		userAgent:     userAgent,
		hl:            hl,
		gl:            gl,
		http:          client,
		logger:        logging.NewComponentLogger(cfg.Logger, "youtube"),
	}, nil
}

// ListTranscripts returns the caption catalog for videoID.
func (c *Client) ListTranscripts(ctx context.Context, videoID string) (*TranscriptList, error) {
	if c == nil {
		return nil, errors.New("youtube: client is nil")
	}
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, ErrInvalidVideoID
	}
	logger := logging.WithContext(ctx, c.logger)

	payload, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: playerContext{
			Client: playerClient{
				ClientName:        "ANDROID",
				ClientVersion:     c.clientVersion,
				AndroidSdkVersion: androidSDKVersion,
				Hl:                c.hl,
				Gl:                c.gl,
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, fmt.Errorf("youtube: encode player request: %w", err)
	}

	endpoint := c.baseURL.JoinPath("youtubei", "v1", "player")
	endpoint.RawQuery = url.Values{"prettyPrint": []string{"false"}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("youtube: build player request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", c.clientVersion)

	logger.Debug("requesting caption catalog", logging.String("endpoint", endpoint.Path))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube: player request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "player"); err != nil {
		return nil, err
	}

	var player playerResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPlayerBody)).Decode(&player); err != nil {
		return nil, fmt.Errorf("youtube: decode player response: %w", err)
	}
	if err := checkPlayability(videoID, player); err != nil {
		return nil, err
	}
	if player.Captions == nil || len(player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks) == 0 {
		return nil, fmt.Errorf("%w for video %s", ErrTranscriptsDisabled, videoID)
	}

	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	transcripts := make([]Transcript, 0, len(tracks))
	for _, track := range tracks {
		code := strings.TrimSpace(track.LanguageCode)
		if code == "" || strings.TrimSpace(track.BaseURL) == "" {
			continue
		}
		name := strings.TrimSpace(track.Name.String())
		if name == "" {
			name = language.DisplayName(code)
		}
		transcripts = append(transcripts, Transcript{
			VideoID:      videoID,
			LanguageCode: code,
			Language:     name,
			Generated:    track.Kind == "asr",
			Translatable: track.IsTranslatable,
			BaseURL:      track.BaseURL,
		})
	}
	if len(transcripts) == 0 {
		return nil, fmt.Errorf("%w for video %s", ErrTranscriptsDisabled, videoID)
	}

	list := NewTranscriptList(videoID, transcripts)
	logger.Debug("caption catalog loaded",
		logging.Int("tracks", list.Len()),
		logging.Strings("languages", list.AvailableLanguages()),
	)
	return list, nil
}

// FetchFragments downloads and parses the timed text behind t.
func (c *Client) FetchFragments(ctx context.Context, t Transcript) ([]Fragment, error) {
	if c == nil {
		return nil, errors.New("youtube: client is nil")
	}
	target, err := timedTextURL(t.BaseURL)
	if err != nil {
		return nil, err
	}
	logger := logging.WithContext(ctx, c.logger)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: build timedtext request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.hl)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube: timedtext request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "timedtext"); err != nil {
		return nil, err
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTimedTextBody))
	if err != nil {
		return nil, fmt.Errorf("youtube: read timedtext: %w", err)
	}

	fragments, err := parseTimedText(body)
	if err != nil {
		return nil, err
	}
	logger.Debug("timedtext fetched",
		logging.String(logging.FieldLanguage, t.LanguageCode),
		logging.Int("fragments", len(fragments)),
	)
	return fragments, nil
}

// timedTextURL drops the fmt parameter so the service returns the plain
// <transcript><text> XML rather than srv3.
func timedTextURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("youtube: transcript has no timedtext url")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("youtube: parse timedtext url: %w", err)
	}
	query := parsed.Query()
	if query.Has("fmt") {
		query.Del("fmt")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String(), nil
}

func checkStatus(resp *http.Response, operation string) error {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s returned %s", ErrRequestBlocked, operation, resp.Status)
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("youtube: %s request failed (%s): %s", operation, resp.Status, strings.TrimSpace(string(body)))
	}
	return nil
}

func checkPlayability(videoID string, player playerResponse) error {
	if player.PlayabilityStatus == nil {
		return nil
	}
	status := strings.ToUpper(strings.TrimSpace(player.PlayabilityStatus.Status))
	reason := strings.TrimSpace(player.PlayabilityStatus.Reason)
	switch status {
	case "", "OK":
		return nil
	case "LOGIN_REQUIRED":
		if strings.Contains(strings.ToLower(reason), "bot") {
			return fmt.Errorf("%w for video %s: %s", ErrRequestBlocked, videoID, reason)
		}
	}
	if reason == "" {
		reason = status
	}
	return fmt.Errorf("%w: %s (%s)", ErrVideoUnavailable, videoID, reason)
}
