package value

import (
	"strconv"

	"github.com/0xalexb/ersatta/path"
)

// String is a resolved string value.
type String struct {
	origin Origin
	value  string
}

// NewString creates a String value.
func NewString(origin Origin, value string) *String {
	return &String{origin: origin, value: value}
}

// Value returns the string data.
func (s *String) Value() string { return s.value }

// Origin implements Value.
func (s *String) Origin() Origin { return s.origin }

// Type implements Value.
func (s *String) Type() Type { return StringType }

// Unwrapped implements Value.
func (s *String) Unwrapped() any { return s.value }

// Status implements Value.
func (s *String) Status() Status { return Resolved }

// WithOrigin implements Value.
func (s *String) WithOrigin(origin Origin) Value { return &String{origin: origin, value: s.value} }

// Relativized implements Value. Scalars carry no paths to rewrite.
func (s *String) Relativized(path.Path) Value { return s }

// Render implements Value.
func (s *String) Render() string { return strconv.Quote(s.value) }

func (s *String) resolveSubstitutions(ctx *Context, _ *Source) (Result, error) {
	return Result{Context: ctx, Value: s}, nil
}

// Int is a resolved integer number.
type Int struct {
	origin Origin
	value  int64
}

// NewInt creates an Int value.
func NewInt(origin Origin, value int64) *Int {
	return &Int{origin: origin, value: value}
}

// Value returns the integer data.
func (i *Int) Value() int64 { return i.value }

// Origin implements Value.
func (i *Int) Origin() Origin { return i.origin }

// Type implements Value.
func (i *Int) Type() Type { return NumberType }

// Unwrapped implements Value.
func (i *Int) Unwrapped() any { return i.value }

// Status implements Value.
func (i *Int) Status() Status { return Resolved }

// WithOrigin implements Value.
func (i *Int) WithOrigin(origin Origin) Value { return &Int{origin: origin, value: i.value} }

// Relativized implements Value.
func (i *Int) Relativized(path.Path) Value { return i }

// Render implements Value.
func (i *Int) Render() string { return strconv.FormatInt(i.value, 10) }

func (i *Int) resolveSubstitutions(ctx *Context, _ *Source) (Result, error) {
	return Result{Context: ctx, Value: i}, nil
}

// Float is a resolved floating-point number.
type Float struct {
	origin Origin
	value  float64
}

// NewFloat creates a Float value.
func NewFloat(origin Origin, value float64) *Float {
	return &Float{origin: origin, value: value}
}

// Value returns the float data.
func (f *Float) Value() float64 { return f.value }

// Origin implements Value.
func (f *Float) Origin() Origin { return f.origin }

// Type implements Value.
func (f *Float) Type() Type { return NumberType }

// Unwrapped implements Value.
func (f *Float) Unwrapped() any { return f.value }

// Status implements Value.
func (f *Float) Status() Status { return Resolved }

// WithOrigin implements Value.
func (f *Float) WithOrigin(origin Origin) Value { return &Float{origin: origin, value: f.value} }

// Relativized implements Value.
func (f *Float) Relativized(path.Path) Value { return f }

// Render implements Value.
func (f *Float) Render() string { return strconv.FormatFloat(f.value, 'g', -1, 64) }

func (f *Float) resolveSubstitutions(ctx *Context, _ *Source) (Result, error) {
	return Result{Context: ctx, Value: f}, nil
}

// Bool is a resolved boolean value.
type Bool struct {
	origin Origin
	value  bool
}

// NewBool creates a Bool value.
func NewBool(origin Origin, value bool) *Bool {
	return &Bool{origin: origin, value: value}
}

// Value returns the boolean data.
func (b *Bool) Value() bool { return b.value }

// Origin implements Value.
func (b *Bool) Origin() Origin { return b.origin }

// Type implements Value.
func (b *Bool) Type() Type { return BoolType }

// Unwrapped implements Value.
func (b *Bool) Unwrapped() any { return b.value }

// Status implements Value.
func (b *Bool) Status() Status { return Resolved }

// WithOrigin implements Value.
func (b *Bool) WithOrigin(origin Origin) Value { return &Bool{origin: origin, value: b.value} }

// Relativized implements Value.
func (b *Bool) Relativized(path.Path) Value { return b }

// Render implements Value.
func (b *Bool) Render() string { return strconv.FormatBool(b.value) }

func (b *Bool) resolveSubstitutions(ctx *Context, _ *Source) (Result, error) {
	return Result{Context: ctx, Value: b}, nil
}

// Null is an explicit null value.
type Null struct {
	origin Origin
}

// NewNull creates a Null value.
func NewNull(origin Origin) *Null {
	return &Null{origin: origin}
}

// Origin implements Value.
func (n *Null) Origin() Origin { return n.origin }

// Type implements Value.
func (n *Null) Type() Type { return NullType }

// Unwrapped implements Value.
func (n *Null) Unwrapped() any { return nil }

// Status implements Value.
func (n *Null) Status() Status { return Resolved }

// WithOrigin implements Value.
func (n *Null) WithOrigin(origin Origin) Value { return &Null{origin: origin} }

// Relativized implements Value.
func (n *Null) Relativized(path.Path) Value { return n }

// Render implements Value.
func (n *Null) Render() string { return "null" }

func (n *Null) resolveSubstitutions(ctx *Context, _ *Source) (Result, error) {
	return Result{Context: ctx, Value: n}, nil
}
