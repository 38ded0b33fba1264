package env

import (
	"os"

	"github.com/0xalexb/ersatta/value"
)

// Resolver is a fallback resolver backed by environment variables. A rendered
// substitution path is looked up verbatim as a variable name, so ${PORT}
// resolves from the PORT environment variable when the tree has no value for
// it. Unset variables report absence; set-but-empty variables resolve to the
// empty string, matching the usual environment semantics.
type Resolver struct {
	lookup func(name string) (string, bool)
}

// NewResolver creates an environment-variable fallback resolver.
func NewResolver() *Resolver {
	return &Resolver{lookup: os.LookupEnv}
}

// NewResolverFromMap creates a resolver backed by a fixed map instead of the
// process environment, for deterministic tests.
func NewResolverFromMap(vars map[string]string) *Resolver {
	return &Resolver{
		lookup: func(name string) (string, bool) {
			v, present := vars[name]

			return v, present
		},
	}
}

// Lookup implements value.Resolver.
func (r *Resolver) Lookup(renderedPath string) value.Value {
	raw, present := r.lookup(renderedPath)
	if !present {
		return nil
	}

	return value.NewString(value.NewOrigin("env var "+renderedPath), raw)
}
