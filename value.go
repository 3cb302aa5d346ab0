package panel

import "errors"

// ErrValueMismatch is returned when an animation target does not have the
// same shape (component count) as the property's current value.
var ErrValueMismatch = errors.New("panel: animation value shape mismatch")

// Value is an animatable quantity: a scalar (one component) or a fixed-length
// tuple such as a color (four components). Values interpolate component-wise.
type Value []float64

// Scalar returns a one-component value.
func Scalar(v float64) Value { return Value{v} }

// Tuple returns a value with the given components.
func Tuple(components ...float64) Value {
	return append(Value(nil), components...)
}

// ColorValue returns c as an R, G, B, A tuple.
func ColorValue(c Color) Value { return Value{c.R, c.G, c.B, c.A} }

// Float returns the first component, or 0 for an empty value.
func (v Value) Float() float64 {
	if len(v) == 0 {
		return 0
	}
	return v[0]
}

// Color interprets a four-component value as a color. Three components are
// treated as an opaque color.
func (v Value) Color() Color {
	switch len(v) {
	case 3:
		return Color{v[0], v[1], v[2], 1}
	case 4:
		return Color{v[0], v[1], v[2], v[3]}
	}
	return Color{}
}

// Equal reports whether both values have the same components.
func (v Value) Equal(other Value) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

func (v Value) clone() Value {
	return append(Value(nil), v...)
}

// lerpValue returns from + (to-from)*t per component. Callers guarantee equal
// lengths.
func lerpValue(from, to Value, t float64) Value {
	out := make(Value, len(from))
	for i := range from {
		out[i] = from[i] + (to[i]-from[i])*t
	}
	return out
}

// Animatable is implemented by node content that exposes named properties to
// the animation engine. Property reports false for names it does not know.
type Animatable interface {
	Property(name string) (Value, bool)
	SetProperty(name string, v Value)
}
