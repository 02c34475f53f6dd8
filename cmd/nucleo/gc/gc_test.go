package gc

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kir-rescomp/nucleo/internal/testutil"
)

func runGC(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGCLiteralDefaultPrecision(t *testing.T) {
	out, err := runGC(t, "ATGC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "GC content: 50.00%\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGCPrecisionFlag(t *testing.T) {
	out, err := runGC(t, "ATGC", "--precision", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "GC content: 50%\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGCNegativePrecisionRejected(t *testing.T) {
	_, err := runGC(t, "ATGC", "--precision", "-1")
	if err == nil || !strings.Contains(err.Error(), "invalid precision") {
		t.Fatalf("expected precision error, got %v", err)
	}
}

func TestGCNoInput(t *testing.T) {
	_, err := runGC(t)
	if err == nil || !strings.Contains(err.Error(), "no input provided") {
		t.Fatalf("expected no-input error, got %v", err)
	}
}

func TestGCFileProcessesNonBlankLinesInOrder(t *testing.T) {
	path := testutil.WriteSequenceFile(t, "seqs.txt", "AAAA", "", "GGGG")
	out, err := runGC(t, "--file", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "GC content: 0.00%\nGC content: 100.00%\n"
	if out != want {
		t.Fatalf("unexpected output: %q, want %q", out, want)
	}
}

func TestGCFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	out, err := runGC(t, "--file", missing)
	if err == nil || !strings.Contains(err.Error(), "file not found") {
		t.Fatalf("expected file-not-found error, got %v", err)
	}
	if strings.Contains(out, "GC content") {
		t.Fatalf("no line should be processed: %q", out)
	}
}

func TestGCFileWinsOverLiteral(t *testing.T) {
	path := testutil.WriteSequenceFile(t, "seqs.txt", "GGGG")
	out, err := runGC(t, "ATGC", "--file", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "GC content: 100.00%\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}
