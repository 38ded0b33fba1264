// Package yaml loads configuration value trees from YAML documents and
// decodes resolved configuration into structs.
//
// ParseTree builds a value tree from goccy/go-yaml's ast, so every node's
// origin carries the source line. String scalars whose whole text is ${path}
// or ${?path} become unresolved References for the substitution engine.
// Decode navigates resolved YAML with colon-separated paths via goccy's
// PathString, matching the Provider path convention.
package yaml
