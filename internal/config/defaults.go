package config

const (
	defaultYouTubeBaseURL = "https://www.youtube.com"
	defaultClientVersion  = "20.10.38"
	defaultUserAgent      = "com.google.android.youtube/" + defaultClientVersion + " (Linux; U; Android 11) gzip"
	defaultHl             = "en"
	defaultGl             = "US"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
	defaultTimeoutSeconds = 0
)

// DefaultLanguages is the preference order used when neither the config file
// nor the command line supplies one.
func DefaultLanguages() []string {
	return []string{"pt", "en"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Transcript: Transcript{
			Languages: DefaultLanguages(),
		},
		YouTube: YouTube{
			BaseURL:        defaultYouTubeBaseURL,
			ClientVersion:  defaultClientVersion,
			UserAgent:      defaultUserAgent,
			Hl:             defaultHl,
			Gl:             defaultGl,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
