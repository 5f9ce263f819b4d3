// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the N-dimensional arrays consumed by the mmqa
// quality-assurance routines.
//
// # Overview
//
// Array is a dense, row-major float64 array. This package provides:
//   - Creation from Go slices and fill values
//   - Axis permutation and rolling (Permute, MoveAxis)
//   - Reductions along one dimension (SumDim, MeanDim, MedianDim)
//   - NumPy-style broadcasting for subtraction
//
// # Basic Usage
//
//	import "github.com/born-ml/mmqa/tensor"
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    y, _ := x.Permute(1, 0)       // Shape: [3, 2]
//	    m, _ := x.MedianDim(-1, false) // Shape: [2]
//	}
//
// # Errors
//
// Shape and axis problems are reported as errors wrapping one of the
// sentinel values (ErrInvalidAxis, ErrShape, ErrShapeMismatch,
// ErrDivisionByZero, ErrEmptyInput). Match them with errors.Is.
//
// # Memory
//
// Every operation returns a new Array; inputs are never modified. Data
// exposes the backing slice without copying.
package tensor
