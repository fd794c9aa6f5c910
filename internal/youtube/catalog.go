package youtube

import (
	"fmt"
	"strings"
)

// TranscriptList is the caption catalog of one video. Manually created tracks
// and auto-generated tracks are kept apart, each in the order the service
// listed them, with at most one track per language code in each group.
type TranscriptList struct {
	VideoID   string
	manual    []Transcript
	generated []Transcript
}

// NewTranscriptList groups transcripts by kind, dropping repeated codes.
func NewTranscriptList(videoID string, transcripts []Transcript) *TranscriptList {
	list := &TranscriptList{VideoID: videoID}
	seenManual := make(map[string]struct{})
	seenGenerated := make(map[string]struct{})
	for _, t := range transcripts {
		if t.Generated {
			if _, ok := seenGenerated[t.LanguageCode]; ok {
				continue
			}
			seenGenerated[t.LanguageCode] = struct{}{}
			list.generated = append(list.generated, t)
			continue
		}
		if _, ok := seenManual[t.LanguageCode]; ok {
			continue
		}
		seenManual[t.LanguageCode] = struct{}{}
		list.manual = append(list.manual, t)
	}
	return list
}

// FindTranscript returns the first transcript matching codes, trying codes in
// order and, for each code, a manually created track before a generated one.
// Codes match exactly.
func (l *TranscriptList) FindTranscript(codes []string) (Transcript, error) {
	if l == nil {
		return Transcript{}, fmt.Errorf("%w: empty catalog", ErrNoTranscriptFound)
	}
	for _, code := range codes {
		if t, ok := find(l.manual, code); ok {
			return t, nil
		}
		if t, ok := find(l.generated, code); ok {
			return t, nil
		}
	}
	return Transcript{}, fmt.Errorf("%w for video %s: requested [%s], available [%s]",
		ErrNoTranscriptFound, l.VideoID, strings.Join(codes, ", "), strings.Join(l.AvailableLanguages(), ", "))
}

// AvailableLanguages lists every language code in the catalog, manual tracks
// first, in service order and without repeats.
func (l *TranscriptList) AvailableLanguages() []string {
	if l == nil {
		return nil
	}
	codes := make([]string, 0, len(l.manual)+len(l.generated))
	seen := make(map[string]struct{}, cap(codes))
	for _, t := range l.All() {
		if _, ok := seen[t.LanguageCode]; ok {
			continue
		}
		seen[t.LanguageCode] = struct{}{}
		codes = append(codes, t.LanguageCode)
	}
	return codes
}

// All returns every transcript, manual tracks first.
func (l *TranscriptList) All() []Transcript {
	if l == nil {
		return nil
	}
	out := make([]Transcript, 0, len(l.manual)+len(l.generated))
	out = append(out, l.manual...)
	return append(out, l.generated...)
}

// Len reports the number of transcripts in the catalog.
func (l *TranscriptList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.manual) + len(l.generated)
}

func find(transcripts []Transcript, code string) (Transcript, bool) {
	for _, t := range transcripts {
		if t.LanguageCode == code {
			return t, true
		}
	}
	return Transcript{}, false
}
