// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/mmqa/internal/tensor"
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Array is a dense, row-major, N-dimensional float64 array.
type Array = tensor.Array

// ReduceFunc collapses the values of one lane into a single value.
type ReduceFunc = tensor.ReduceFunc

// Errors returned by array operations.
var (
	ErrInvalidAxis    = tensor.ErrInvalidAxis
	ErrShape          = tensor.ErrShape
	ErrShapeMismatch  = tensor.ErrShapeMismatch
	ErrDivisionByZero = tensor.ErrDivisionByZero
	ErrEmptyInput     = tensor.ErrEmptyInput
)

// Creation functions

// New allocates a zero-filled array, validating the shape.
func New(shape Shape) (*Array, error) {
	return tensor.New(shape)
}

// FromSlice creates an array from a Go slice.
//
// Example:
//
//	data := []float64{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Array, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates an array filled with zeros.
//
// Example:
//
//	x := tensor.Zeros(tensor.Shape{2, 3})
func Zeros(shape Shape) *Array {
	return tensor.Zeros(shape)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	x := tensor.Full(tensor.Shape{2, 3}, 3.14)
func Full(shape Shape, value float64) *Array {
	return tensor.Full(shape, value)
}

// Scalar creates a 0-D array.
func Scalar(v float64) *Array {
	return tensor.Scalar(v)
}

// Arange creates a 1-D array with n evenly spaced values over [start, stop].
//
// Example:
//
//	x := tensor.Arange(0, 1, 5) // [0, 0.25, 0.5, 0.75, 1]
func Arange(start, stop float64, n int) *Array {
	return tensor.Arange(start, stop, n)
}

// Randn creates an array of normally distributed samples.
// A nil src uses the global source.
//
// Example:
//
//	x := tensor.Randn(tensor.Shape{64, 64}, 0, 1, rand.NewPCG(1, 2))
func Randn(shape Shape, mean, std float64, src rand.Source) *Array {
	return tensor.Randn(shape, mean, std, src)
}

// Median returns the median of x without modifying it.
func Median(x []float64) float64 {
	return tensor.Median(x)
}
