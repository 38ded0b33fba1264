// Package env provides an environment-variable fallback resolver for
// substitutions not found inside the configuration tree.
package env
