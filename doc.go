// Package ersatta resolves HOCON-style ${path} substitutions in immutable
// configuration value trees.
//
// A tree is loaded (for example from YAML via parser/yaml), then resolved:
// every ${path} reference is replaced by the value it points at elsewhere in
// the tree, or by an external fallback such as environment variables.
// Optional ${?path} references silently vanish when unresolvable. Cycles
// between substitutions are detected and reported, never infinitely recursed.
//
// The package follows an interface-based design with small extension points:
//   - TreeParser: deserializes raw data into a value tree
//   - Decoder: decodes resolved data into a struct, with path navigation
//   - DataFetcher: retrieves raw config data (file, static, etc.)
//   - Validator / Defaulter: post-decode hooks on config structs
//   - value.Resolver: the pluggable fallback lookup
//
// A typical usage pattern:
//
//	cfg := &AppConfig{}
//	provider := ersatta.Provider(cfg, "services:api", ersatta.WithEnvFallback())
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
//
// For Fx applications, NewModule provides a resolved *value.Object under a
// named tag.
package ersatta
