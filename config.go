package ersatta

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/ersatta/value"
	"github.com/goccy/go-yaml"
)

// ErrUnresolvedConfig is returned when a tree passed to decoding still
// contains unresolved substitutions, which happens only under the
// allow-unresolved option.
var ErrUnresolvedConfig = errors.New("configuration still contains unresolved substitutions")

// TreeParser defines an interface for parsing raw configuration data into a
// value tree. The filename is used for origins in diagnostics.
type TreeParser interface {
	ParseTree(data []byte, filename string) (*value.Object, error)
}

// Decoder defines an interface for decoding resolved configuration data into
// a target structure.
//
// The path parameter specifies a navigation path within the configuration
// data using colon (:) as the separator for nested keys. For example:
//   - "api:permissions" navigates to config["api"]["permissions"]
//   - "" (empty path) means decode the entire document
//
// Decoder implementations are responsible for path navigation internally.
// See parser/yaml for an implementation using goccy/go-yaml PathString.
type Decoder interface {
	Decode(data []byte, target any, path string) error
}

// Parser combines tree parsing and struct decoding; parser/yaml implements both.
type Parser interface {
	TreeParser
	Decoder
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Load fetches raw configuration data, parses it into a value tree and
// resolves all substitutions.
func Load(parser TreeParser, fetcher DataFetcher, opts ...Option) (*value.Object, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	tree, err := parser.ParseTree(data, originName(fetcher))
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	return Resolve(tree, opts...)
}

// originName derives an origin description from the fetcher when it can name
// its source, such as fetcher/file.
func originName(fetcher DataFetcher) string {
	if named, canName := fetcher.(interface{ Path() string }); canName {
		return named.Path()
	}

	return "config"
}

// Provider returns a function that loads, resolves, decodes, sets defaults in,
// and validates configuration data. The path selects a section of the resolved
// document using colon (:) as separator; empty means the whole document.
func Provider[T any](target *T, path string, opts ...Option) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		tree, err := Load(parser, fetcher, opts...)
		if err != nil {
			return nil, err
		}

		if tree.Status() == value.Unresolved {
			return nil, ErrUnresolvedConfig
		}

		data, err := yaml.Marshal(tree.Unwrapped())
		if err != nil {
			return nil, fmt.Errorf("encoding resolved config: %w", err)
		}

		err = parser.Decode(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
