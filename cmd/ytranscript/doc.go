// Package main hosts the ytranscript CLI entrypoint and command graph.
//
// The root command takes one YouTube video id and prints a single JSON record
// on stdout: the joined transcript on success, or an error message. Handled
// failures exit 0 so automation callers can branch on the record itself; only
// a missing argument or a broken local setup exits 1. Logs always go to
// stderr.
//
// Subcommands list a video's caption catalog and scaffold or validate the
// optional configuration file.
package main
