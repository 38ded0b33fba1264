package ersatta

import (
	"github.com/0xalexb/ersatta/resolver/env"
	"github.com/0xalexb/ersatta/value"
)

// Options holds settings for a resolution pass.
type Options struct {
	Fallback        value.Resolver
	AllowUnresolved bool
	Tracer          value.Tracer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithFallback sets the fallback resolver consulted, by rendered path, for
// substitutions not found inside the tree.
func WithFallback(resolver value.Resolver) Option {
	return func(opts *Options) {
		opts.Fallback = resolver
	}
}

// WithEnvFallback uses process environment variables as the fallback
// resolver: ${PORT} resolves from the PORT variable when the tree has no
// value for it.
func WithEnvFallback() Option {
	return func(opts *Options) {
		opts.Fallback = env.NewResolver()
	}
}

// WithAllowUnresolved leaves required substitutions that cannot be resolved
// unchanged in the tree instead of failing. Used for staged or partial
// resolution passes.
func WithAllowUnresolved() Option {
	return func(opts *Options) {
		opts.AllowUnresolved = true
	}
}

// WithTracer sets a diagnostic tracer invoked with the resolution depth and a
// message at key algorithm steps. See logging.NewTracer for a slog-backed one.
func WithTracer(tracer value.Tracer) Option {
	return func(opts *Options) {
		opts.Tracer = tracer
	}
}

func (o *Options) resolveOptions() value.ResolveOptions {
	return value.ResolveOptions{
		AllowUnresolved: o.AllowUnresolved,
		Fallback:        o.Fallback,
		Tracer:          o.Tracer,
	}
}
