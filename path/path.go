package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyPath is returned when parsing an empty string.
var ErrEmptyPath = errors.New("empty path")

// ErrEmptySegment is returned when a path contains an empty unquoted segment,
// such as "a..b" or a leading/trailing dot.
var ErrEmptySegment = errors.New("empty path segment")

// ErrUnterminatedQuote is returned when a quoted segment is missing its closing quote.
var ErrUnterminatedQuote = errors.New("unterminated quoted segment")

// Path is an immutable, ordered sequence of key segments identifying a
// location in a configuration tree. The textual form separates segments with
// dots; segments containing reserved characters are double-quoted.
type Path struct {
	segments []string
}

// New creates a Path from the given segments, taken verbatim (no dot splitting).
func New(segments ...string) Path {
	copied := make([]string, len(segments))
	copy(copied, segments)

	return Path{segments: copied}
}

// Parse parses the dotted textual form of a path. Double-quoted segments may
// contain dots and escape sequences in Go string-literal syntax:
//
//	a.b.c        -> [a b c]
//	a."b.c".d    -> [a b.c d]
func Parse(s string) (Path, error) {
	if s == "" {
		return Path{}, ErrEmptyPath
	}

	var segments []string

	rest := s

	for {
		segment, remainder, err := scanSegment(rest)
		if err != nil {
			return Path{}, fmt.Errorf("parsing path %q: %w", s, err)
		}

		segments = append(segments, segment)

		if remainder == "" {
			return Path{segments: segments}, nil
		}

		rest = remainder
	}
}

// scanSegment consumes one segment from the front of s and returns it together
// with everything after the separating dot. An empty remainder means the
// segment was the last one.
func scanSegment(s string) (segment string, remainder string, err error) {
	if s == "" {
		return "", "", ErrEmptySegment
	}

	if s[0] == '"' {
		end := closingQuote(s)
		if end < 0 {
			return "", "", ErrUnterminatedQuote
		}

		unquoted, unquoteErr := strconv.Unquote(s[:end+1])
		if unquoteErr != nil {
			return "", "", fmt.Errorf("invalid quoted segment: %w", unquoteErr)
		}

		rest := s[end+1:]
		if rest == "" {
			return unquoted, "", nil
		}

		if rest[0] != '.' {
			return "", "", fmt.Errorf("%w: expected '.' after quoted segment", ErrEmptySegment)
		}

		if len(rest) == 1 {
			// Trailing dot.
			return "", "", ErrEmptySegment
		}

		return unquoted, rest[1:], nil
	}

	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s, "", nil
	}

	if dot == 0 || dot == len(s)-1 {
		return "", "", ErrEmptySegment
	}

	return s[:dot], s[dot+1:], nil
}

// closingQuote returns the index of the closing double quote of a quoted
// segment starting at s[0], honoring backslash escapes, or -1 if unterminated.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}

	return -1
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []string {
	copied := make([]string, len(p.segments))
	copy(copied, p.segments)

	return copied
}

// First returns the first segment, or the empty string for an empty path.
func (p Path) First() string {
	if len(p.segments) == 0 {
		return ""
	}

	return p.segments[0]
}

// Prepend returns a new Path with the prefix's segments inserted at the front.
func (p Path) Prepend(prefix Path) Path {
	segments := make([]string, 0, len(prefix.segments)+len(p.segments))
	segments = append(segments, prefix.segments...)
	segments = append(segments, p.segments...)

	return Path{segments: segments}
}

// SubPath returns a new Path with the first n segments removed. It returns an
// empty path when n is not smaller than the path's length.
func (p Path) SubPath(n int) Path {
	if n <= 0 {
		return New(p.segments...)
	}

	if n >= len(p.segments) {
		return Path{}
	}

	return New(p.segments[n:]...)
}

// Append returns a new Path with the given segment added at the end.
func (p Path) Append(segment string) Path {
	segments := make([]string, 0, len(p.segments)+1)
	segments = append(segments, p.segments...)
	segments = append(segments, segment)

	return Path{segments: segments}
}

// Equal reports whether both paths have the same segment sequence.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}

	for i, segment := range p.segments {
		if other.segments[i] != segment {
			return false
		}
	}

	return true
}

// Render produces the dotted textual form, quoting segments that contain
// reserved characters. Parse(p.Render()) yields a path equal to p.
func (p Path) Render() string {
	var sb strings.Builder

	for i, segment := range p.segments {
		if i > 0 {
			sb.WriteByte('.')
		}

		if needsQuotes(segment) {
			sb.WriteString(strconv.Quote(segment))
		} else {
			sb.WriteString(segment)
		}
	}

	return sb.String()
}

// String returns the rendered form.
func (p Path) String() string {
	return p.Render()
}

func needsQuotes(segment string) bool {
	if segment == "" {
		return true
	}

	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return true
		}
	}

	return false
}
