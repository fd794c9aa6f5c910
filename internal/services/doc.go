// Package services defines shared utilities consumed by the CLI and the
// transcript pipeline.
//
// Key responsibilities:
//   - Context helpers that stamp video IDs and correlation identifiers for
//     logging.
//   - Structured error markers plus the Wrap helper that keep pre-flight
//     failures (configuration, arguments) distinguishable from remote ones.
package services
