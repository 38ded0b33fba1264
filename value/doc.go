// Package value holds the configuration value tree and the substitution
// resolution engine.
//
// A tree is built from immutable variants: Object, List, the scalar types and
// Reference, the ${path} / ${?path} placeholder. ResolveObject runs one
// resolution pass, replacing every Reference with the value it points at,
// found elsewhere in the tree or supplied by a pluggable fallback Resolver.
// Cycles between substitutions are detected per pass through identity-keyed
// cycle markers and surface as *UnresolvedSubstitutionError, except that an
// optional substitution involved in a cycle resolves to absence instead.
//
// Resolution never mutates the input tree; it builds new resolved nodes, so
// the same unresolved tree can be resolved repeatedly and concurrently, each
// pass with its own Context.
package value
