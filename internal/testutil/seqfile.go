package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteSequenceFile writes lines joined by newlines into a temp file and
// returns its path. The file is cleaned up with the test's temp dir.
func WriteSequenceFile(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	body := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// WriteConfigFile writes CUE config content into a temp file and returns
// its path.
func WriteConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.cue")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
