package stage

import (
	"context"
	"errors"
	"fmt"

	"github.com/kir-rescomp/nucleo/internal/seqio"
)

// readInputRunner resolves the configured input source into records. The
// file, when set, wins over inline sequences; it is read in full here so
// no stage after this one touches the filesystem for input.
func readInputRunner(ctx context.Context, in Envelope) (Envelope, error) {
	if in.Meta == nil || in.Meta.Cfg == nil {
		return Envelope{}, errors.New("read-input: config not loaded")
	}
	cfg := in.Meta.Cfg

	var recs []seqio.Record
	var err error
	switch {
	case cfg.Input.File != "" && cfg.Input.Format == "fasta":
		recs, err = seqio.ReadFasta(cfg.Input.File)
	case cfg.Input.File != "":
		recs, err = seqio.ReadLineRecords(cfg.Input.File)
	default:
		for i, s := range cfg.Input.Sequences {
			recs = append(recs, seqio.Record{
				ID:       fmt.Sprintf("inline:%d", i+1),
				Sequence: s,
			})
		}
	}
	if err != nil {
		return Envelope{}, err
	}

	out := in
	out.Records = make([]Record, 0, len(recs))
	for _, r := range recs {
		out.Records = append(out.Records, Record{Locator: r.ID, Sequence: r.Sequence})
	}
	return out, nil
}

func init() { Register("read-input", readInputRunner) }
