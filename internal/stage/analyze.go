package stage

import (
	"context"
	"errors"
	"fmt"

	"github.com/kir-rescomp/nucleo/internal/config"
	"github.com/kir-rescomp/nucleo/internal/seq"
)

const analyzeStage = "analyze"

// analyzeRunner applies the configured action to every surviving record.
// In fail-fast mode the first validation failure aborts the run; in
// keep-going mode the failure is recorded and processing continues.
func analyzeRunner(ctx context.Context, in Envelope) (Envelope, error) {
	if in.Meta == nil || in.Meta.Cfg == nil {
		return Envelope{}, errors.New("analyze: config not loaded")
	}
	cfg := in.Meta.Cfg
	mode := errorMode(in.Meta)

	out := in
	out.Records = make([]Record, 0, len(in.Records))
	for _, rec := range in.Records {
		if rec.Error != nil {
			out.Records = append(out.Records, rec)
			continue
		}
		analyzed, err := analyzeRecord(rec, cfg)
		if err != nil {
			if mode == config.ModeKeepGoing {
				rec.Error = &RecError{Stage: analyzeStage, Message: err.Error()}
				out.Records = append(out.Records, rec)
				out.Errors = append(out.Errors, Error{Stage: analyzeStage, Locator: rec.Locator, Message: err.Error()})
				continue
			}
			return Envelope{}, fmt.Errorf("%s: %s: %v", analyzeStage, rec.Locator, err)
		}
		out.Records = append(out.Records, analyzed)
	}
	return out, nil
}

func analyzeRecord(rec Record, cfg *config.Config) (Record, error) {
	switch cfg.Action {
	case config.ActionGC:
		v, err := seq.GCContent(rec.Sequence)
		if err != nil {
			return Record{}, err
		}
		rec.GC = &v
		rec.GCText = fmt.Sprintf("%.*f", cfg.Precision, v)
	case config.ActionRevComp:
		rec.RevComp = seq.ReverseComplement(rec.Sequence)
	case config.ActionStats:
		v, err := seq.GCContent(rec.Sequence)
		if err != nil {
			return Record{}, err
		}
		rec.Stats = &Stats{
			Length: len(rec.Sequence),
			Counts: seq.CountBases(rec.Sequence),
			GC:     v,
		}
	default:
		return Record{}, fmt.Errorf("invalid action: %q", cfg.Action)
	}
	return rec, nil
}

func init() { Register(analyzeStage, analyzeRunner) }
