package run

import (
	"github.com/kir-rescomp/nucleo/internal/config"
	"github.com/kir-rescomp/nucleo/internal/stage"
)

const (
	exitCodeSuccess   = 0
	exitCodeExecErr   = 1
	exitCodeNoMatches = 2
)

type runExitError struct {
	code int
	msg  string
}

func (e runExitError) Error() string { return e.msg }
func (e runExitError) ExitCode() int { return e.code }

func keepGoingMode(meta *stage.Meta) bool {
	return meta != nil && meta.Cfg != nil && meta.Cfg.Errors.Mode == config.ModeKeepGoing
}

func filterConfigured(meta *stage.Meta) bool {
	return meta != nil && meta.Cfg != nil && meta.Cfg.Filter.HasInline
}

func countRecordResults(records []stage.Record) (successes int, failures int) {
	for _, r := range records {
		if r.Error != nil {
			failures++
		} else {
			successes++
		}
	}
	return
}

func hasFailures(env stage.Envelope) bool {
	_, failures := countRecordResults(env.Records)
	return failures > 0 || len(env.Errors) > 0
}

// evaluateRunExit turns the finished envelope into the process outcome.
// Keep-going runs succeed as long as at least one record made it through;
// a filter that eliminated every record is reported distinctly so callers
// can tell "nothing matched" from "something failed".
func evaluateRunExit(env stage.Envelope) error {
	if keepGoingMode(env.Meta) && hasFailures(env) {
		successes, _ := countRecordResults(env.Records)
		if successes == 0 {
			return runExitError{code: exitCodeExecErr, msg: "keep-going: no successful records"}
		}
		return nil
	}
	if filterConfigured(env.Meta) && len(env.Records) == 0 && len(env.Errors) == 0 {
		return runExitError{code: exitCodeNoMatches, msg: "no records matched filter"}
	}
	return nil
}
