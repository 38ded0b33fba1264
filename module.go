package ersatta

import (
	"errors"
	"fmt"

	"github.com/0xalexb/ersatta/value"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module that loads and resolves a named configuration
// tree. The name is used as both the Fx module name and the DI named tag for
// the resolved *value.Object. A TreeParser and DataFetcher must be available
// in the container (e.g., parser/yaml and fetcher/file).
// Call multiple times with different names to load multiple configurations.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(parser TreeParser, fetcher DataFetcher) (*value.Object, error) {
					return Load(parser, fetcher, opts...)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
