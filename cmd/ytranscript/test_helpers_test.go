package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	server     *httptest.Server
	configPath string
	baseDir    string
}

// fakeTrack is one caption track served by the fake player endpoint.
type fakeTrack struct {
	code      string
	generated bool
	lines     []string
}

// setupCLITestEnv isolates HOME and points the YouTube client at a local
// server publishing the supplied catalogs keyed by video id. A nil catalog
// means captions are disabled for that video.
func setupCLITestEnv(t *testing.T, catalogs map[string][]fakeTrack) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config"))

	env := &cliTestEnv{baseDir: base}
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/youtubei/v1/player":
			var req struct {
				VideoID string `json:"videoId"`
			}
			data, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(data, &req)
			tracks, ok := catalogs[req.VideoID]
			if !ok {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"playabilityStatus": map[string]any{"status": "ERROR", "reason": "This video is unavailable"},
				})
				return
			}
			resp := map[string]any{"playabilityStatus": map[string]any{"status": "OK"}}
			if tracks != nil {
				captionTracks := make([]map[string]any, 0, len(tracks))
				for _, track := range tracks {
					kind := ""
					if track.generated {
						kind = "asr"
					}
					captionTracks = append(captionTracks, map[string]any{
						"baseUrl":      fmt.Sprintf("%s/api/timedtext?v=%s&lang=%s&kind=%s&fmt=srv3", env.server.URL, req.VideoID, track.code, kind),
						"languageCode": track.code,
						"kind":         kind,
					})
				}
				resp["captions"] = map[string]any{
					"playerCaptionsTracklistRenderer": map[string]any{"captionTracks": captionTracks},
				}
			}
			_ = json.NewEncoder(w).Encode(resp)
		case "/api/timedtext":
			q := r.URL.Query()
			for _, track := range catalogs[q.Get("v")] {
				if track.code != q.Get("lang") || track.generated != (q.Get("kind") == "asr") {
					continue
				}
				var sb strings.Builder
				sb.WriteString("<transcript>")
				for i, line := range track.lines {
					fmt.Fprintf(&sb, `<text start="%d" dur="1">%s</text>`, i, line)
				}
				sb.WriteString("</transcript>")
				_, _ = io.WriteString(w, sb.String())
				return
			}
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(env.server.Close)

	env.configPath = filepath.Join(base, "config.toml")
	writeTestConfig(t, env.configPath, env.server.URL)
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(positionalArgs(cmd, append(flags, args...)))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path, baseURL string) {
	t.Helper()
	content := fmt.Sprintf("[transcript]\nlanguages = [\"pt\", \"en\"]\n\n[youtube]\nbase_url = %q\n", baseURL)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func decodeRecord(t *testing.T, output string) map[string]string {
	t.Helper()
	if strings.Count(output, "\n") != 1 || !strings.HasSuffix(output, "\n") {
		t.Fatalf("expected exactly one line of output, got %q", output)
	}
	var record map[string]string
	if err := json.Unmarshal([]byte(output), &record); err != nil {
		t.Fatalf("decode record %q: %v", output, err)
	}
	return record
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
