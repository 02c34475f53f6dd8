// Package seqio resolves sequence inputs for the CLI: literal arguments,
// plain line-per-sequence files, and FASTA files.
package seqio

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoInput is returned when neither a literal sequence nor a file path
// was supplied.
var ErrNoInput = errors.New("no input provided")

// Record is one named sequence read from an input source.
type Record struct {
	ID       string
	Sequence string
}

// ResolveInputs returns the ordered list of sequences for a command
// invocation. A file path takes precedence over a literal argument.
func ResolveInputs(literal, filePath string) ([]string, error) {
	if filePath != "" {
		return ReadLines(filePath)
	}
	if literal != "" {
		return []string{literal}, nil
	}
	return nil, ErrNoInput
}

// ReadLines reads a plain text file, one sequence per line. Lines are
// trimmed; blank lines are skipped.
func ReadLines(path string) ([]string, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

// ReadLineRecords reads a line-per-sequence file, attaching a
// "<path>:<line>" locator to each non-blank line.
func ReadLineRecords(path string) ([]Record, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var out []Record
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, Record{
			ID:       fmt.Sprintf("%s:%d", path, i+1),
			Sequence: line,
		})
	}
	return out, nil
}

// ReadFasta reads a FASTA file. A line starting with '>' opens a record
// named by the first token of the header; subsequent lines up to the next
// header are concatenated into its sequence. Sequence data before the
// first header is rejected.
func ReadFasta(path string) ([]Record, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var out []Record
	open := false
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			id := strings.TrimPrefix(line, ">")
			if fields := strings.Fields(id); len(fields) > 0 {
				id = fields[0]
			}
			out = append(out, Record{ID: id})
			open = true
			continue
		}
		if !open {
			return nil, fmt.Errorf("%s:%d: sequence data before first FASTA header", path, i+1)
		}
		out[len(out)-1].Sequence += line
	}
	return out, nil
}

// readFile checks existence first so a missing file fails with a stable
// message before any read is attempted.
func readFile(path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
