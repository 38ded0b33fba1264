package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/ersatta/path"
	"github.com/0xalexb/ersatta/value"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotAnObject is returned when the document root is not a mapping.
var ErrNotAnObject = errors.New("document root is not an object")

// ErrUnsupportedNode is returned for YAML constructs the value tree cannot
// represent, such as aliases.
var ErrUnsupportedNode = errors.New("unsupported YAML node")

// Parser builds configuration value trees from YAML documents and decodes
// resolved configuration back into structs. It uses goccy/go-yaml's ast for
// tree building (so origins carry real line numbers) and PathString for
// decode-time path navigation.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseTree parses YAML data into a value tree. The document root must be a
// mapping. A string scalar whose entire text is ${path} or ${?path} becomes
// an unresolved Reference; this is the only substitution syntax the loader
// recognizes (it is a YAML loader, not a HOCON parser). The filename is used
// only for origins.
func (p *Parser) ParseTree(data []byte, filename string) (*value.Object, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil, ErrEmptyData
	}

	root, err := convertNode(file.Docs[0].Body, filename)
	if err != nil {
		return nil, err
	}

	obj, isObject := root.(*value.Object)
	if !isObject {
		return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, file.Docs[0].Body)
	}

	return obj, nil
}

// Decode unmarshals resolved YAML data into the target. The path parameter
// specifies a navigation path using colon (:) as separator; an empty path
// decodes the entire document.
func (p *Parser) Decode(data []byte, target any, navPath string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if navPath == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(toYAMLPath(navPath))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", navPath, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, navPath)
		}

		return fmt.Errorf("reading path %q: %w", navPath, err)
	}

	return nil
}

// toYAMLPath converts a colon-separated navigation path to goccy/go-yaml
// PathString format: "api:permissions" -> "$.api.permissions".
func toYAMLPath(navPath string) string {
	return "$." + strings.Join(strings.Split(navPath, ":"), ".")
}

func nodeOrigin(node ast.Node, filename string) value.Origin {
	origin := value.Origin{Description: filename}

	if tok := node.GetToken(); tok != nil && tok.Position != nil {
		origin.Line = tok.Position.Line
	}

	return origin
}

func convertNode(node ast.Node, filename string) (value.Value, error) {
	origin := nodeOrigin(node, filename)

	switch n := node.(type) {
	case *ast.MappingNode:
		return convertMapping(n.Values, origin, filename)
	case *ast.MappingValueNode:
		// A single-pair mapping parses as a bare MappingValueNode.
		return convertMapping([]*ast.MappingValueNode{n}, origin, filename)
	case *ast.SequenceNode:
		elements := make([]value.Value, 0, len(n.Values))

		for _, element := range n.Values {
			converted, err := convertNode(element, filename)
			if err != nil {
				return nil, err
			}

			elements = append(elements, converted)
		}

		return value.NewList(origin, elements), nil
	case *ast.StringNode:
		return convertString(n.Value, origin)
	case *ast.LiteralNode:
		// Block scalars are taken verbatim, without substitution detection.
		return value.NewString(origin, n.Value.Value), nil
	case *ast.IntegerNode:
		return convertInteger(n.Value, origin)
	case *ast.FloatNode:
		return value.NewFloat(origin, n.Value), nil
	case *ast.BoolNode:
		return value.NewBool(origin, n.Value), nil
	case *ast.NullNode:
		return value.NewNull(origin), nil
	case *ast.TagNode:
		return convertNode(n.Value, filename)
	case *ast.AnchorNode:
		return convertNode(n.Value, filename)
	default:
		return nil, fmt.Errorf("%w: %T at %s", ErrUnsupportedNode, node, origin)
	}
}

func convertMapping(pairs []*ast.MappingValueNode, origin value.Origin, filename string) (value.Value, error) {
	entries := make(map[string]value.Value, len(pairs))

	for _, pair := range pairs {
		key, err := keyText(pair.Key)
		if err != nil {
			return nil, err
		}

		converted, err := convertNode(pair.Value, filename)
		if err != nil {
			return nil, err
		}

		entries[key] = converted
	}

	return value.NewObject(origin, entries), nil
}

func keyText(key ast.MapKeyNode) (string, error) {
	switch k := key.(type) {
	case *ast.StringNode:
		return k.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode:
		return key.String(), nil
	default:
		return "", fmt.Errorf("%w: mapping key %T", ErrUnsupportedNode, key)
	}
}

// convertString turns a string scalar into either a plain String value or,
// when the whole text is substitution syntax, an unresolved Reference.
func convertString(text string, origin value.Origin) (value.Value, error) {
	if !strings.HasPrefix(text, "${") || !strings.HasSuffix(text, "}") {
		return value.NewString(origin, text), nil
	}

	inner := text[2 : len(text)-1]

	optional := strings.HasPrefix(inner, "?")
	if optional {
		inner = inner[1:]
	}

	refPath, err := path.Parse(inner)
	if err != nil {
		return nil, fmt.Errorf("invalid substitution %q at %s: %w", text, origin, err)
	}

	return value.NewReference(origin, value.NewExpression(refPath, optional)), nil
}

func convertInteger(raw any, origin value.Origin) (value.Value, error) {
	switch v := raw.(type) {
	case int64:
		return value.NewInt(origin, v), nil
	case uint64:
		return value.NewInt(origin, int64(v)), nil
	case int:
		return value.NewInt(origin, int64(v)), nil
	default:
		return nil, fmt.Errorf("%w: integer representation %T", ErrUnsupportedNode, raw)
	}
}
