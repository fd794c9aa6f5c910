// Package youtube is a small client for YouTube's caption catalog.
//
// ListTranscripts asks the Innertube player endpoint (ANDROID client) for the
// caption tracks of a video and returns them as a TranscriptList: descriptors
// only, no text. FetchFragments resolves one descriptor into its timed text
// fragments by downloading the track's timedtext XML.
//
// Failures are reported with the sentinel errors in errors.go so callers can
// branch with errors.Is (transcripts disabled, no matching transcript, video
// unavailable, request blocked).
package youtube
