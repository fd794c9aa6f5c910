package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MissingArgumentMessage is reported when no video id was supplied.
const MissingArgumentMessage = "Por favor, forneça o ID de um vídeo do YouTube como argumento."

// FailureKind classifies a failed fetch.
type FailureKind int

const (
	// KindNone marks a successful Result.
	KindNone FailureKind = iota
	KindMissingArgument
	KindNoTranscriptFound
	KindTranscriptsDisabled
	KindUnexpected
)

func (k FailureKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMissingArgument:
		return "missing_argument"
	case KindNoTranscriptFound:
		return "no_transcript_found"
	case KindTranscriptsDisabled:
		return "transcripts_disabled"
	case KindUnexpected:
		return "unexpected"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Result is the outcome of one fetch. Exactly one of Transcript or Error is
// meaningful, selected by Kind.
type Result struct {
	Kind       FailureKind
	VideoID    string
	Language   string
	Transcript string
	Error      string
}

// Success builds a successful Result.
func Success(videoID, language, text string) Result {
	return Result{Kind: KindNone, VideoID: videoID, Language: language, Transcript: text}
}

// Failure builds a failed Result with a preformatted message.
func Failure(kind FailureKind, videoID, message string) Result {
	if kind == KindNone {
		kind = KindUnexpected
	}
	return Result{Kind: kind, VideoID: videoID, Error: message}
}

// MissingArgument is the Result for an invocation without a video id.
func MissingArgument() Result {
	return Failure(KindMissingArgument, "", MissingArgumentMessage)
}

// NoTranscriptFound is the Result when no track matches any language.
func NoTranscriptFound(videoID string) Result {
	return Failure(KindNoTranscriptFound, videoID,
		fmt.Sprintf("Nenhuma transcrição encontrada para o vídeo ID: %s nos idiomas especificados ou disponíveis.", videoID))
}

// TranscriptsDisabled is the Result when the video exposes no captions.
func TranscriptsDisabled(videoID string) Result {
	return Failure(KindTranscriptsDisabled, videoID,
		fmt.Sprintf("As transcrições estão desabilitadas para o vídeo ID: %s.", videoID))
}

// Unexpected wraps any other failure.
func Unexpected(videoID string, err error) Result {
	return Failure(KindUnexpected, videoID, fmt.Sprintf("Ocorreu um erro inesperado: %v", err))
}

// OK reports whether r is a success.
func (r Result) OK() bool {
	return r.Kind == KindNone
}

type successJSON struct {
	Transcript string `json:"transcript"`
	VideoID    string `json:"video_id"`
	Language   string `json:"language"`
}

type failureJSON struct {
	Error   string `json:"error"`
	VideoID string `json:"video_id,omitempty"`
}

// MarshalJSON emits {transcript, video_id, language} on success and
// {error, video_id} on failure. video_id is omitted from failures when unknown.
func (r Result) MarshalJSON() ([]byte, error) {
	var v any = failureJSON{Error: r.Error, VideoID: r.VideoID}
	if r.OK() {
		v = successJSON{Transcript: r.Transcript, VideoID: r.VideoID, Language: r.Language}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
