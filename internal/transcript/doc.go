// Package transcript selects and downloads one transcript for a video.
//
// The Fetcher consults a caption catalog, walks the caller's language
// preferences in order, falls back to any available track, and joins the
// fragment texts into a single string. Every outcome, including remote
// failures, is reported as a Result value rather than an error so the command
// layer can serialize it directly.
package transcript
