package transcript_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"ytranscript/internal/transcript"
	"ytranscript/internal/youtube"
)

type fakeSource struct {
	tracks    []youtube.Transcript
	fragments map[string][]youtube.Fragment
	listErr   error
	fetchErr  error

	listCalls int
	fetched   []string
}

func (f *fakeSource) ListTranscripts(_ context.Context, videoID string) (*youtube.TranscriptList, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	tracks := make([]youtube.Transcript, len(f.tracks))
	for i, t := range f.tracks {
		t.VideoID = videoID
		tracks[i] = t
	}
	return youtube.NewTranscriptList(videoID, tracks), nil
}

func (f *fakeSource) FetchFragments(_ context.Context, t youtube.Transcript) ([]youtube.Fragment, error) {
	key := t.LanguageCode
	if t.Generated {
		key += "/asr"
	}
	f.fetched = append(f.fetched, key)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.fragments[key], nil
}

func manual(code string) youtube.Transcript {
	return youtube.Transcript{LanguageCode: code, Language: code}
}

func generated(code string) youtube.Transcript {
	return youtube.Transcript{LanguageCode: code, Language: code, Generated: true}
}

func words(texts ...string) []youtube.Fragment {
	out := make([]youtube.Fragment, len(texts))
	for i, text := range texts {
		out[i] = youtube.Fragment{Text: text, Start: float64(i), Duration: 1}
	}
	return out
}

func TestFetchLanguageSelection(t *testing.T) {
	fragments := map[string][]youtube.Fragment{
		"pt":     words("olá", "mundo"),
		"en":     words("hello", "world"),
		"en/asr": words("hallo", "word"),
		"de":     words("hallo", "welt"),
		"fr/asr": words("bonjour"),
	}
	tests := []struct {
		name        string
		tracks      []youtube.Transcript
		preferences []string
		wantLang    string
		wantText    string
		wantFetched string
	}{
		{
			name:        "first preference",
			tracks:      []youtube.Transcript{manual("en"), manual("pt")},
			wantLang:    "pt",
			wantText:    "olá mundo",
			wantFetched: "pt",
		},
		{
			name:        "second preference",
			tracks:      []youtube.Transcript{manual("de"), manual("en")},
			wantLang:    "en",
			wantText:    "hello world",
			wantFetched: "en",
		},
		{
			name:        "manual before generated",
			tracks:      []youtube.Transcript{generated("en"), manual("en")},
			wantLang:    "en",
			wantText:    "hello world",
			wantFetched: "en",
		},
		{
			name:        "generated track satisfies preference",
			tracks:      []youtube.Transcript{manual("de"), generated("en")},
			wantLang:    "en",
			wantText:    "hallo word",
			wantFetched: "en/asr",
		},
		{
			name:        "fallback to first available",
			tracks:      []youtube.Transcript{generated("fr"), manual("de")},
			wantLang:    "de",
			wantText:    "hallo welt",
			wantFetched: "de",
		},
		{
			name:        "custom preferences",
			tracks:      []youtube.Transcript{manual("pt"), manual("de")},
			preferences: []string{"de", "pt"},
			wantLang:    "de",
			wantText:    "hallo welt",
			wantFetched: "de",
		},
		{
			name:        "exact code match only",
			tracks:      []youtube.Transcript{generated("fr")},
			preferences: []string{"FR", "fr-CA"},
			wantLang:    "fr",
			wantText:    "bonjour",
			wantFetched: "fr/asr",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakeSource{tracks: tt.tracks, fragments: fragments}
			result := transcript.NewFetcher(source, nil).Fetch(context.Background(), "vid-1", tt.preferences)
			if !result.OK() {
				t.Fatalf("expected success, got %+v", result)
			}
			if result.Language != tt.wantLang {
				t.Fatalf("language = %q, want %q", result.Language, tt.wantLang)
			}
			if result.Transcript != tt.wantText {
				t.Fatalf("transcript = %q, want %q", result.Transcript, tt.wantText)
			}
			if result.VideoID != "vid-1" {
				t.Fatalf("video id = %q", result.VideoID)
			}
			if !reflect.DeepEqual(source.fetched, []string{tt.wantFetched}) {
				t.Fatalf("fetched %v, want [%s]", source.fetched, tt.wantFetched)
			}
		})
	}
}

func TestFetchFailures(t *testing.T) {
	tests := []struct {
		name     string
		source   *fakeSource
		wantKind transcript.FailureKind
		wantMsg  string
	}{
		{
			name:     "transcripts disabled",
			source:   &fakeSource{listErr: fmt.Errorf("%w for video abc", youtube.ErrTranscriptsDisabled)},
			wantKind: transcript.KindTranscriptsDisabled,
			wantMsg:  "As transcrições estão desabilitadas para o vídeo ID: abc.",
		},
		{
			name:     "empty catalog",
			source:   &fakeSource{},
			wantKind: transcript.KindNoTranscriptFound,
			wantMsg:  "Nenhuma transcrição encontrada para o vídeo ID: abc nos idiomas especificados ou disponíveis.",
		},
		{
			name:     "catalog error",
			source:   &fakeSource{listErr: errors.New("connection reset")},
			wantKind: transcript.KindUnexpected,
			wantMsg:  "Ocorreu um erro inesperado: connection reset",
		},
		{
			name:     "video unavailable",
			source:   &fakeSource{listErr: fmt.Errorf("%w: abc (private)", youtube.ErrVideoUnavailable)},
			wantKind: transcript.KindUnexpected,
			wantMsg:  "Ocorreu um erro inesperado: youtube: video unavailable: abc (private)",
		},
		{
			name:     "fragment error",
			source:   &fakeSource{tracks: []youtube.Transcript{manual("pt")}, fetchErr: errors.New("timedtext 500")},
			wantKind: transcript.KindUnexpected,
			wantMsg:  "Ocorreu um erro inesperado: timedtext 500",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := transcript.NewFetcher(tt.source, nil).Fetch(context.Background(), "abc", nil)
			if result.OK() {
				t.Fatalf("expected failure, got %+v", result)
			}
			if result.Kind != tt.wantKind {
				t.Fatalf("kind = %v, want %v", result.Kind, tt.wantKind)
			}
			if result.Error != tt.wantMsg {
				t.Fatalf("error = %q, want %q", result.Error, tt.wantMsg)
			}
			if result.VideoID != "abc" {
				t.Fatalf("expected video id on failure, got %+v", result)
			}
			if tt.wantKind != transcript.KindUnexpected && !strings.Contains(result.Error, "abc") {
				t.Fatalf("expected video id in message %q", result.Error)
			}
		})
	}
}

func TestFetchMissingVideoID(t *testing.T) {
	source := &fakeSource{tracks: []youtube.Transcript{manual("pt")}}
	result := transcript.NewFetcher(source, nil).Fetch(context.Background(), "   ", nil)
	if result.Kind != transcript.KindMissingArgument {
		t.Fatalf("expected missing argument, got %+v", result)
	}
	if result.Error != transcript.MissingArgumentMessage {
		t.Fatalf("unexpected message %q", result.Error)
	}
	if source.listCalls != 0 {
		t.Fatalf("expected no catalog lookup, got %d", source.listCalls)
	}
}

func TestFetchIsIdempotent(t *testing.T) {
	source := &fakeSource{
		tracks:    []youtube.Transcript{manual("en")},
		fragments: map[string][]youtube.Fragment{"en": words("same", "text")},
	}
	fetcher := transcript.NewFetcher(source, nil)
	first := fetcher.Fetch(context.Background(), "vid", nil)
	second := fetcher.Fetch(context.Background(), "vid", nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}

func TestFetchNilSource(t *testing.T) {
	result := transcript.NewFetcher(nil, nil).Fetch(context.Background(), "vid", nil)
	if result.Kind != transcript.KindUnexpected || result.VideoID != "vid" {
		t.Fatalf("expected unexpected failure, got %+v", result)
	}
}

func TestJoinFragments(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  string
	}{
		{"two words", []string{"Hello", "world"}, "Hello world"},
		{"empty", nil, ""},
		{"no trimming", []string{" a", "b ", ""}, " a b  "},
		{"repeats kept", []string{"la", "la", "la"}, "la la la"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transcript.JoinFragments(words(tt.texts...)); got != tt.want {
				t.Fatalf("JoinFragments = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchEchoesVideoIDAsGiven(t *testing.T) {
	source := &fakeSource{listErr: youtube.ErrTranscriptsDisabled}
	result := transcript.NewFetcher(source, nil).Fetch(context.Background(), " abc ", nil)
	if result.VideoID != " abc " {
		t.Fatalf("expected untrimmed video id, got %q", result.VideoID)
	}
	if result.Error != "As transcrições estão desabilitadas para o vídeo ID:  abc ." {
		t.Fatalf("unexpected message %q", result.Error)
	}
}
