package stage

import "sort"

// SortEnvelopeErrors orders envelope errors by stage, then locator, then
// message, so serialized output is deterministic.
func SortEnvelopeErrors(env *Envelope) {
	sort.SliceStable(env.Errors, func(i, j int) bool {
		a, b := env.Errors[i], env.Errors[j]
		if a.Stage != b.Stage {
			return a.Stage < b.Stage
		}
		if a.Locator != b.Locator {
			return a.Locator < b.Locator
		}
		return a.Message < b.Message
	})
}
