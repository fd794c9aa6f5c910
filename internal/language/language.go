package language

import (
	"fmt"
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type entry struct {
	code2   string // ISO 639-1 (2-letter)
	display string // Human-readable name
}

var languages = []entry{
	{"en", "English"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"de", "German"},
	{"it", "Italian"},
	{"pt", "Portuguese"},
	{"ja", "Japanese"},
	{"ko", "Korean"},
	{"zh", "Chinese"},
	{"ru", "Russian"},
	{"ar", "Arabic"},
	{"hi", "Hindi"},
	{"nl", "Dutch"},
	{"pl", "Polish"},
	{"sv", "Swedish"},
	{"da", "Danish"},
	{"no", "Norwegian"},
	{"fi", "Finnish"},
}

var byCode2 map[string]*entry

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
	}
}

// Validate reports whether code is a well-formed BCP 47 tag.
func Validate(code string) error {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return fmt.Errorf("language code is empty")
	}
	if _, err := xlanguage.Parse(trimmed); err != nil {
		return fmt.Errorf("language code %q: %w", trimmed, err)
	}
	return nil
}

// DisplayName returns a human-readable language name for code.
// Returns "Unknown" for empty input, or the code itself when nothing matches.
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "Unknown"
	}
	if e, ok := byCode2[strings.ToLower(trimmed)]; ok {
		return e.display
	}
	tag, err := xlanguage.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return trimmed
}

// DedupeList trims and de-duplicates codes while keeping their order and case.
func DedupeList(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	out := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SplitList expands comma-separated entries ("pt,en") into individual codes.
func SplitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return DedupeList(out)
}
