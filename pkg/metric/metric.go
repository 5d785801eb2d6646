// Package metric defines the numeric value type logged by a training loop.
package metric

import (
	"math"
)

// Value is a metric value produced during a training step: either a single
// scalar (a loss, an accuracy) or a multi-element tensor. A Value is
// immutable once constructed.
type Value struct {
	data []float64
}

// Scalar wraps a single float as a metric value.
func Scalar(v float64) Value {
	return Value{data: []float64{v}}
}

// Tensor wraps a sequence of floats as a metric value. The input is copied,
// so later mutation of the argument does not reach the Value.
func Tensor(vs ...float64) Value {
	data := make([]float64, len(vs))
	copy(data, vs)
	return Value{data: data}
}

// Len returns the number of elements.
func (v Value) Len() int {
	return len(v.data)
}

// IsScalar reports whether the value holds exactly one element.
func (v Value) IsScalar() bool {
	return len(v.data) == 1
}

// HasNaN reports whether any element is not-a-number.
func (v Value) HasNaN() bool {
	for _, x := range v.data {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}

// Item returns the single element of a scalar value as a plain host float.
// Calling Item on a non-scalar value is a programming error.
func (v Value) Item() float64 {
	return v.data[0]
}

// Items returns a copy of all elements.
func (v Value) Items() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}
