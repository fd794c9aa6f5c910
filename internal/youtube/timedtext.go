package youtube

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// markupPattern matches complete inline tags only; a stray '<' stays as text.
var markupPattern = regexp.MustCompile(`<[^>]*>`)

func parseTimedText(body []byte) ([]Fragment, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("youtube: parse timedtext xml: %w", err)
	}
	fragments := make([]Fragment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		if line.Text == "" {
			continue
		}
		fragments = append(fragments, Fragment{
			Text:     plainText(line.Text),
			Start:    parseSeconds(line.Start),
			Duration: parseSeconds(line.Dur),
		})
	}
	return fragments, nil
}

// plainText decodes the HTML entities YouTube leaves inside caption text and
// drops inline markup such as <font> or <i>.
func plainText(s string) string {
	if !strings.ContainsAny(s, "&<") {
		return s
	}
	return markupPattern.ReplaceAllString(html.UnescapeString(s), "")
}

func parseSeconds(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}
