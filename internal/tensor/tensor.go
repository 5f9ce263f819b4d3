// Package tensor provides the dense N-dimensional float64 array used by the
// mmqa numeric routines.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Array is a dense, row-major, N-dimensional float64 array.
//
// A zero-dimensional Array holds exactly one element and acts as a scalar.
// Operations never mutate their receiver; they return a new Array.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	b, _ := a.Permute(1, 0) // shape [3 2]
type Array struct {
	data   []float64
	shape  Shape
	stride []int
}

// New allocates a zero-filled array with the given shape.
func New(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Array{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's memory.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShape, shape, shape.NumElements(), len(data))
	}

	a, err := New(shape)
	if err != nil {
		return nil, err
	}
	copy(a.data, data)
	return a, nil
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's row-major strides.
func (a *Array) Strides() []int {
	return a.stride
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return len(a.data)
}

// Data returns the flat row-major backing slice.
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array) Data() []float64 {
	return a.data
}

// Item returns the value of a single-element array.
// Panics if the array holds more or fewer than one element.
func (a *Array) Item() float64 {
	if len(a.data) != 1 {
		panic(fmt.Sprintf("item: only works for single-element arrays, got shape %v", a.shape))
	}
	return a.data[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array) At(indices ...int) float64 {
	return a.data[a.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array) Set(value float64, indices ...int) {
	a.data[a.offset(indices)] = value
}

func (a *Array) offset(indices []int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i]))
		}
		offset += idx * a.stride[i]
	}
	return offset
}

// Clone creates a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{
		data:   data,
		shape:  a.shape.Clone(),
		stride: a.shape.ComputeStrides(),
	}
}

// Min returns the smallest element.
func (a *Array) Min() (float64, error) {
	if len(a.data) == 0 {
		return 0, fmt.Errorf("min: %w", ErrEmptyInput)
	}
	return floats.Min(a.data), nil
}

// Max returns the largest element.
func (a *Array) Max() (float64, error) {
	if len(a.data) == 0 {
		return 0, fmt.Errorf("max: %w", ErrEmptyInput)
	}
	return floats.Max(a.data), nil
}

// String returns a human-readable representation of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array%v", a.shape)
}
