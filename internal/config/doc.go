// Package config loads, normalizes, and validates ytranscript configuration.
//
// A configuration file is optional: every knob has a repository default, so a
// bare `ytranscript <video_id>` invocation behaves the same on a fresh host as
// it does in a provisioned container. When present, the TOML file is read
// from the --config path, the XDG config directory, or ./ytranscript.toml.
//
// Always obtain settings through Load so downstream code receives trimmed
// values, de-duplicated language preferences, and clear validation errors.
package config
