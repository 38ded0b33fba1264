// Package file provides a file-backed DataFetcher for configuration loading.
package file
