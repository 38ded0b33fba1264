package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyPath is returned when the Fetcher is constructed with an empty path.
var ErrEmptyPath = errors.New("file path must not be empty")

// ErrPathIsDirectory is returned when the path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher reads configuration data from a file. The file is read once at
// construction time and the contents are cached, so repeated Fetch calls see
// a consistent snapshot even if the file changes on disk.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a file-backed
// Fetcher. The constructor shape keeps instantiation under the DI container's
// control: the file is read only when the container actually builds the
// fetcher. It returns an error for an empty path, a directory, or an
// unreadable file.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if fpath == "" {
			return nil, ErrEmptyPath
		}

		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path the data was read from, for use as an origin
// description.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached data. A copy is returned so callers
// cannot mutate the snapshot.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
