package ersatta

import (
	"fmt"

	"github.com/0xalexb/ersatta/value"
)

// Resolve runs one substitution-resolution pass over root and returns the
// resolved tree. The input tree is never mutated; each call owns a fresh
// resolution context, so the same tree may be resolved repeatedly and
// concurrently.
func Resolve(root *value.Object, opts ...Option) (*value.Object, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	resolved, err := value.ResolveObject(root, options.resolveOptions())
	if err != nil {
		return nil, fmt.Errorf("resolving substitutions: %w", err)
	}

	return resolved, nil
}
