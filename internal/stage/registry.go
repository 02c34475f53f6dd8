package stage

import "context"

// Runner executes one stage over an envelope.
type Runner func(ctx context.Context, in Envelope) (Envelope, error)

var registry = map[string]Runner{}

// Register adds a stage runner under a name.
func Register(name string, r Runner) {
	registry[name] = r
}

// Run executes a registered stage by name.
func Run(ctx context.Context, name string, in Envelope) (Envelope, error) {
	r, ok := registry[name]
	if !ok {
		return Envelope{}, ErrUnknown{name: name}
	}
	return r(ctx, in)
}

// ErrUnknown is returned when a stage is not registered.
type ErrUnknown struct{ name string }

func (e ErrUnknown) Error() string { return "unknown stage: " + e.name }
