package run

import (
	"context"

	"github.com/kir-rescomp/nucleo/internal/stage"
)

// pipelineStages is the fixed stage order for `nucleo run`.
var pipelineStages = []string{
	"validate-config",
	"read-input",
	"lua-filter",
	"analyze",
	"write-output",
}

// executePipeline runs the full pipeline over a fresh envelope.
func executePipeline(ctx context.Context, cfgPath string) (stage.Envelope, error) {
	in := stage.Envelope{Records: []stage.Record{}, Meta: &stage.Meta{ConfigPath: cfgPath}}
	return runStages(ctx, in, pipelineStages)
}

// runStages executes the named stages in order, stopping on the first
// fatal error.
func runStages(ctx context.Context, in stage.Envelope, stages []string) (stage.Envelope, error) {
	out := in
	var err error
	for _, name := range stages {
		out, err = stage.Run(ctx, name, out)
		if err != nil {
			return stage.Envelope{}, err
		}
	}
	return out, nil
}
