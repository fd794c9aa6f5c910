package youtube

import "strings"

// Transcript describes one caption track available for a video. It is a
// handle only; FetchFragments turns it into text.
type Transcript struct {
	VideoID      string `json:"video_id"`
	LanguageCode string `json:"language_code"`
	Language     string `json:"language"`
	Generated    bool   `json:"generated"`
	Translatable bool   `json:"translatable"`
	BaseURL      string `json:"-"`
}

// Fragment is one timed unit of transcript text. Start and Duration are seconds.
type Fragment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

type playerRequest struct {
	VideoID        string        `json:"videoId"`
	Context        playerContext `json:"context"`
	RacyCheckOk    bool          `json:"racyCheckOk"`
	ContentCheckOk bool          `json:"contentCheckOk"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL        string     `json:"baseUrl"`
	LanguageCode   string     `json:"languageCode"`
	Kind           string     `json:"kind"` // "asr" = auto-generated
	Name           renderText `json:"name"`
	IsTranslatable bool       `json:"isTranslatable"`
}

type renderText struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (r renderText) String() string {
	if r.SimpleText != "" {
		return r.SimpleText
	}
	var sb strings.Builder
	for _, run := range r.Runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}
