package validation

// Options switch the optional checks run when a node is built.
//
// Structural checks (required fields, choice types, value or children) always run.
type Options struct {
	ReferenceTypes   bool
	ValueSetBindings bool
}

// Option configures [Options].
type Option func(*Options)

// DefaultOptions enables all checks.
func DefaultOptions() Options {
	return Options{
		ReferenceTypes:   true,
		ValueSetBindings: true,
	}
}

// NewOptions applies opts on top of [DefaultOptions].
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithReferenceTypeChecks toggles checking the resource types of references.
func WithReferenceTypeChecks(enabled bool) Option {
	return func(o *Options) {
		o.ReferenceTypes = enabled
	}
}

// WithValueSetBindingChecks toggles checking required value set bindings.
func WithValueSetBindingChecks(enabled bool) Option {
	return func(o *Options) {
		o.ValueSetBindings = enabled
	}
}
