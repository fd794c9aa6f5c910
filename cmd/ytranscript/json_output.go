package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"ytranscript/internal/transcript"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeRecord prints result as one compact JSON line; callers parse stdout.
func writeRecord(cmd *cobra.Command, result transcript.Result) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}
