// Package config loads and validates the CUE configuration consumed by
// `nucleo run`.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultPrecision is the number of decimal places used for GC output
// when the config does not set one.
const DefaultPrecision = 2

// Actions accepted by the pipeline.
const (
	ActionGC      = "gc"
	ActionRevComp = "revcomp"
	ActionStats   = "stats"
)

// Error handling modes.
const (
	ModeFailFast  = "fail-fast"
	ModeKeepGoing = "keep-going"
)

// Config is the validated run configuration.
type Config struct {
	ConfigVersion string
	Action        string
	Input         Input
	Precision     int
	Filter        Filter
	Output        Output
	Errors        Errors
	Sandbox       Sandbox
}

// Input selects where sequences come from: a file or inline values.
type Input struct {
	File      string
	Format    string // "lines" or "fasta"
	Sequences []string
}

// Filter holds the optional Lua predicate applied per record.
type Filter struct {
	Inline    string
	HasInline bool
}

// Output controls rendering of the result envelope.
type Output struct {
	Out    string // "-" or empty means stdout
	Format string // "json" or "yaml"
	Lines  bool
	Pretty bool
}

// Errors selects the error handling mode.
type Errors struct {
	Mode string
}

// Sandbox bounds Lua filter execution.
type Sandbox struct {
	TimeoutMs        int
	InstructionLimit int
	HasTimeout       bool
	HasLimit         bool
}

// Load parses and validates a CUE config file.
func Load(path string) (Config, error) {
	if filepath.Ext(path) != ".cue" {
		return Config{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %v", err)
	}

	cfg := Config{
		Precision: DefaultPrecision,
		Input:     Input{Format: "lines"},
		Output:    Output{Out: "-", Format: "json"},
		Errors:    Errors{Mode: ModeFailFast},
	}
	if err := decodeRequiredString(v, "configVersion", &cfg.ConfigVersion); err != nil {
		return Config{}, err
	}
	if err := decodeRequiredString(v, "action", &cfg.Action); err != nil {
		return Config{}, err
	}
	decodeInput(v, &cfg.Input)
	if pv := v.LookupPath(cue.ParsePath("precision")); pv.Exists() && pv.Kind() == cue.IntKind {
		var p int
		if err := pv.Decode(&p); err == nil {
			cfg.Precision = p
		}
	}
	if fv := v.LookupPath(cue.ParsePath("filter.inline")); fv.Exists() && fv.Kind() == cue.StringKind {
		if err := fv.Decode(&cfg.Filter.Inline); err == nil {
			cfg.Filter.HasInline = true
		}
	}
	decodeOutput(v, &cfg.Output)
	if mv := v.LookupPath(cue.ParsePath("errors.mode")); mv.Exists() && mv.Kind() == cue.StringKind {
		_ = mv.Decode(&cfg.Errors.Mode)
	}
	decodeSandbox(v, &cfg.Sandbox)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeRequiredString(v cue.Value, name string, dst *string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	if err := f.Decode(dst); err != nil {
		return fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return nil
}

func decodeInput(v cue.Value, in *Input) {
	iv := v.LookupPath(cue.ParsePath("input"))
	if !iv.Exists() {
		return
	}
	if fv := iv.LookupPath(cue.ParsePath("file")); fv.Exists() && fv.Kind() == cue.StringKind {
		_ = fv.Decode(&in.File)
	}
	if fv := iv.LookupPath(cue.ParsePath("format")); fv.Exists() && fv.Kind() == cue.StringKind {
		_ = fv.Decode(&in.Format)
	}
	if sv := iv.LookupPath(cue.ParsePath("sequences")); sv.Exists() && sv.Kind() == cue.ListKind {
		_ = sv.Decode(&in.Sequences)
	}
}

func decodeOutput(v cue.Value, out *Output) {
	ov := v.LookupPath(cue.ParsePath("output"))
	if !ov.Exists() {
		return
	}
	if pv := ov.LookupPath(cue.ParsePath("out")); pv.Exists() && pv.Kind() == cue.StringKind {
		_ = pv.Decode(&out.Out)
	}
	if fv := ov.LookupPath(cue.ParsePath("format")); fv.Exists() && fv.Kind() == cue.StringKind {
		_ = fv.Decode(&out.Format)
	}
	if lv := ov.LookupPath(cue.ParsePath("lines")); lv.Exists() && lv.Kind() == cue.BoolKind {
		_ = lv.Decode(&out.Lines)
	}
	if pv := ov.LookupPath(cue.ParsePath("pretty")); pv.Exists() && pv.Kind() == cue.BoolKind {
		_ = pv.Decode(&out.Pretty)
	}
}

func decodeSandbox(v cue.Value, sb *Sandbox) {
	sv := v.LookupPath(cue.ParsePath("luaSandbox"))
	if !sv.Exists() {
		return
	}
	if tv := sv.LookupPath(cue.ParsePath("timeoutMs")); tv.Exists() && tv.Kind() == cue.IntKind {
		if err := tv.Decode(&sb.TimeoutMs); err == nil {
			sb.HasTimeout = true
		}
	}
	if lv := sv.LookupPath(cue.ParsePath("instructionLimit")); lv.Exists() && lv.Kind() == cue.IntKind {
		if err := lv.Decode(&sb.InstructionLimit); err == nil {
			sb.HasLimit = true
		}
	}
}

func (c Config) validate() error {
	switch c.Action {
	case ActionGC, ActionRevComp, ActionStats:
	default:
		return fmt.Errorf("invalid action: %q", c.Action)
	}
	if c.Input.File == "" && len(c.Input.Sequences) == 0 {
		return errors.New("no input provided: set input.file or input.sequences")
	}
	switch c.Input.Format {
	case "lines", "fasta":
	default:
		return fmt.Errorf("invalid input.format: %q", c.Input.Format)
	}
	if c.Precision < 0 {
		return fmt.Errorf("invalid precision: %d", c.Precision)
	}
	switch c.Output.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid output.format: %q", c.Output.Format)
	}
	switch c.Errors.Mode {
	case ModeFailFast, ModeKeepGoing:
	default:
		return fmt.Errorf("invalid errors.mode: %q", c.Errors.Mode)
	}
	return nil
}
