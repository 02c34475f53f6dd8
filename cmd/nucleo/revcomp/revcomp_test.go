package revcomp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kir-rescomp/nucleo/internal/testutil"
)

func runRevComp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRevCompLiteral(t *testing.T) {
	out, err := runRevComp(t, "ATGC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "GCAT\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRevCompCasePreserved(t *testing.T) {
	out, err := runRevComp(t, "AtGc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "gCaT\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRevCompFileOrder(t *testing.T) {
	path := testutil.WriteSequenceFile(t, "seqs.txt", "AAAA", "", "ATGC")
	out, err := runRevComp(t, "--file", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "TTTT\nGCAT\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRevCompNoInput(t *testing.T) {
	_, err := runRevComp(t)
	if err == nil || !strings.Contains(err.Error(), "no input provided") {
		t.Fatalf("expected no-input error, got %v", err)
	}
}
