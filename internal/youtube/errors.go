package youtube

import "errors"

var (
	// ErrInvalidVideoID is returned when the video identifier is empty.
	ErrInvalidVideoID = errors.New("youtube: video id is required")
	// ErrTranscriptsDisabled means the video has no caption tracks at all.
	ErrTranscriptsDisabled = errors.New("youtube: transcripts are disabled")
	// ErrNoTranscriptFound means none of the requested language codes has a track.
	ErrNoTranscriptFound = errors.New("youtube: no transcript found")
	// ErrVideoUnavailable covers removed, private, or otherwise unplayable videos.
	ErrVideoUnavailable = errors.New("youtube: video unavailable")
	// ErrRequestBlocked is returned when YouTube rate limits or bot-checks the caller.
	ErrRequestBlocked = errors.New("youtube: request blocked")
)
