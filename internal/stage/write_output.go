package stage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kir-rescomp/nucleo/internal/report"
)

const writeOutputStage = "write-output"

func writeOutputRunner(ctx context.Context, in Envelope) (Envelope, error) {
	if in.Meta == nil || in.Meta.Cfg == nil {
		return Envelope{}, errors.New("write-output: config not loaded")
	}
	out := in.Meta.Cfg.Output

	env := in
	env.Meta.ContractVersion = "1"
	SortEnvelopeErrors(&env)

	var data []byte
	var err error
	switch {
	case out.Lines:
		data, err = encodeLines(env.Records)
	case out.Format == "yaml":
		data, err = report.MarshalYAML(env)
	case out.Pretty:
		data, err = encodeJSONPretty(env)
	default:
		data, err = encodeJSONCompact(env)
	}
	if err != nil {
		return Envelope{}, fmt.Errorf("%s: %v", writeOutputStage, err)
	}
	if err := writeTo(out.Out, data); err != nil {
		return Envelope{}, err
	}
	return in, nil
}

// encodeLines renders NDJSON: one compact record per line.
func encodeLines(records []Record) ([]byte, error) {
	var all bytes.Buffer
	for _, r := range records {
		b, err := encodeJSONCompact(r)
		if err != nil {
			return nil, err
		}
		all.Write(b)
	}
	return all.Bytes(), nil
}

func encodeJSONCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSONPretty(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeTo(outPath string, data []byte) error {
	if outPath == "" || outPath == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%s: %v", writeOutputStage, err)
		}
	}
	return os.WriteFile(outPath, data, 0o644)
}

func init() { Register(writeOutputStage, writeOutputRunner) }
