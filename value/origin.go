package value

import "fmt"

// Origin records where a value came from, for diagnostics only. It is
// deliberately excluded from all equality comparisons: two values are the same
// value regardless of where in source they appeared.
type Origin struct {
	// Description names the source, typically a file name or a phrase such
	// as "env var PORT".
	Description string
	// Line is the 1-based line within the source, or 0 when unknown.
	Line int
}

// NewOrigin creates an Origin with the given description and no line.
func NewOrigin(description string) Origin {
	return Origin{Description: description}
}

// String renders the origin for error messages.
func (o Origin) String() string {
	if o.Description == "" {
		return "unknown origin"
	}

	if o.Line > 0 {
		return fmt.Sprintf("%s: %d", o.Description, o.Line)
	}

	return o.Description
}
