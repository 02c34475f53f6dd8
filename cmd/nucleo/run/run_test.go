package run

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kir-rescomp/nucleo/internal/stage"
	"github.com/kir-rescomp/nucleo/internal/testutil"
)

func writeRunConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteConfigFile(t, content)
}

func TestPipelineGCLinesOutput(t *testing.T) {
	seqs := testutil.WriteSequenceFile(t, "seqs.txt", "ATGC", "", "GGGG")
	out := filepath.Join(t.TempDir(), "out.ndjson")
	cfg := writeRunConfig(t, fmt.Sprintf(`
configVersion: "v1"
action:        "gc"
input: file: %q
output: {
	out:   %q
	lines: true
}
`, seqs, out))

	env, err := executePipeline(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := evaluateRunExit(env); err != nil {
		t.Fatalf("unexpected exit error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 NDJSON lines, got %d:\n%s", len(lines), data)
	}
	var rec stage.Record
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("invalid NDJSON: %v", err)
	}
	if rec.GCText != "100.00" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestPipelineFilterAndStats(t *testing.T) {
	seqs := testutil.WriteSequenceFile(t, "seqs.txt", "ATGC", "A", "GATTACA")
	out := filepath.Join(t.TempDir(), "out.json")
	cfg := writeRunConfig(t, fmt.Sprintf(`
configVersion: "v1"
action:        "stats"
input: file: %q
filter: inline: "string.len(seq) >= 4"
output: out: %q
`, seqs, out))

	env, err := executePipeline(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := evaluateRunExit(env); err != nil {
		t.Fatalf("unexpected exit error: %v", err)
	}
	if len(env.Records) != 2 {
		t.Fatalf("expected 2 surviving records, got %+v", env.Records)
	}
	if env.Records[1].Stats == nil || env.Records[1].Stats.Length != 7 {
		t.Fatalf("unexpected stats: %+v", env.Records[1])
	}
}

func TestPipelineKeepGoingMixedRecords(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	cfg := writeRunConfig(t, fmt.Sprintf(`
configVersion: "v1"
action:        "gc"
input: sequences: ["ATGC", "", "GGGG"]
errors: mode: "keep-going"
output: out: %q
`, out))

	env, err := executePipeline(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := evaluateRunExit(env); err != nil {
		t.Fatalf("good records should carry the run: %v", err)
	}
	successes, failures := countRecordResults(env.Records)
	if successes != 2 || failures != 1 {
		t.Fatalf("unexpected results: %d successes, %d failures", successes, failures)
	}
}

func TestPipelineFailFastStopsOnEmptySequence(t *testing.T) {
	cfg := writeRunConfig(t, `
configVersion: "v1"
action:        "gc"
input: sequences: ["ATGC", ""]
`)
	_, err := executePipeline(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), "sequence cannot be empty") {
		t.Fatalf("expected empty-sequence failure, got %v", err)
	}
}

func TestPipelineAllRecordsFailKeepGoing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	cfg := writeRunConfig(t, fmt.Sprintf(`
configVersion: "v1"
action:        "gc"
input: sequences: [""]
errors: mode: "keep-going"
output: out: %q
`, out))

	env, err := executePipeline(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertExitError(t, evaluateRunExit(env), "keep-going: no successful records", exitCodeExecErr)
}

func TestPipelineFastaInput(t *testing.T) {
	seqs := testutil.WriteSequenceFile(t, "seqs.fa", ">chr1", "ATGC", "GATT", ">chr2", "AAAA")
	out := filepath.Join(t.TempDir(), "out.json")
	cfg := writeRunConfig(t, fmt.Sprintf(`
configVersion: "v1"
action:        "revcomp"
input: {
	file:   %q
	format: "fasta"
}
output: out: %q
`, seqs, out))

	env, err := executePipeline(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(env.Records) != 2 {
		t.Fatalf("expected 2 records, got %+v", env.Records)
	}
	if env.Records[0].Locator != "chr1" || env.Records[0].RevComp != "AATCGCAT" {
		t.Fatalf("unexpected record: %+v", env.Records[0])
	}
}

func TestRunCommandRequiresConfig(t *testing.T) {
	cmd := New()
	cmd.SetArgs(nil)
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "missing required flag: --config") {
		t.Fatalf("expected missing-config error, got %v", err)
	}
}
