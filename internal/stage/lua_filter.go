package stage

import (
	"context"
	"fmt"
	"strings"

	"github.com/kir-rescomp/nucleo/internal/config"
)

const luaFilterStage = "lua-filter"

// luaFilterRunner drops records for which the configured Lua predicate is
// falsy. Without a configured filter the envelope passes through
// untouched. Records run in input order; the pipeline is sequential.
func luaFilterRunner(ctx context.Context, in Envelope) (Envelope, error) {
	if in.Meta == nil || in.Meta.Cfg == nil || !in.Meta.Cfg.Filter.HasInline {
		return in, nil
	}
	pred := wrapPredicate(in.Meta.Cfg.Filter.Inline)
	mode := errorMode(in.Meta)
	sandbox := sandboxFromMeta(in.Meta)

	out := in
	out.Records = make([]Record, 0, len(in.Records))
	for _, rec := range in.Records {
		if rec.Error != nil {
			// Already-failed records skip filtering so their error survives
			// to the output.
			out.Records = append(out.Records, rec)
			continue
		}
		keep, violation, err := runFilterScript(sandbox, map[string]string{
			"locator": rec.Locator,
			"seq":     rec.Sequence,
		}, pred)
		if err == nil && violation != "" {
			err = fmt.Errorf("%s", violation)
		}
		if err != nil {
			if mode == config.ModeKeepGoing {
				rec.Error = &RecError{Stage: luaFilterStage, Message: err.Error()}
				out.Records = append(out.Records, rec)
				out.Errors = append(out.Errors, Error{Stage: luaFilterStage, Locator: rec.Locator, Message: err.Error()})
				continue
			}
			return Envelope{}, fmt.Errorf("%s: %v", luaFilterStage, err)
		}
		if keep {
			out.Records = append(out.Records, rec)
		}
	}
	return out, nil
}

// wrapPredicate turns a bare expression into a chunk with an explicit
// return so both `seq == "ATGC"` and full scripts work.
func wrapPredicate(code string) string {
	if strings.Contains(code, "return") {
		return code
	}
	return "return (" + code + ")"
}

func init() { Register(luaFilterStage, luaFilterRunner) }
