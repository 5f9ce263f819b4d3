package tensor

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ReduceFunc collapses the values of one lane into a single value.
// The lane slice is scratch space and may be reordered.
type ReduceFunc func(lane []float64) float64

// ReduceDim applies fn to every lane along dim.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// Example:
//
//	a := tensor.Zeros(Shape{2, 3, 4})
//	b, _ := a.ReduceDim(-1, true, fn)  // shape: [2, 3, 1]
//	c, _ := a.ReduceDim(-1, false, fn) // shape: [2, 3]
func (a *Array) ReduceDim(dim int, keepDim bool, fn ReduceFunc) (*Array, error) {
	ndim := len(a.shape)
	dim, err := NormalizeAxis(dim, ndim)
	if err != nil {
		return nil, fmt.Errorf("reducedim: %w", err)
	}

	var outShape Shape
	if keepDim {
		outShape = a.shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(Shape, 0, ndim-1)
		for i := 0; i < ndim; i++ {
			if i != dim {
				outShape = append(outShape, a.shape[i])
			}
		}
	}
	out := Zeros(outShape)

	// The array splits into outer × n × inner around dim; each lane is strided by inner.
	n := a.shape[dim]
	inner := a.stride[dim]
	outer := 1
	for _, d := range a.shape[:dim] {
		outer *= d
	}

	lane := make([]float64, n)
	for o := 0; o < outer; o++ {
		base := o * n * inner
		for i := 0; i < inner; i++ {
			for k := 0; k < n; k++ {
				lane[k] = a.data[base+k*inner+i]
			}
			out.data[o*inner+i] = fn(lane)
		}
	}

	return out, nil
}

// SumDim sums elements along dim.
func (a *Array) SumDim(dim int, keepDim bool) (*Array, error) {
	return a.ReduceDim(dim, keepDim, floats.Sum)
}

// MeanDim computes the arithmetic mean along dim.
func (a *Array) MeanDim(dim int, keepDim bool) (*Array, error) {
	return a.ReduceDim(dim, keepDim, func(lane []float64) float64 {
		return stat.Mean(lane, nil)
	})
}

// MedianDim computes the median along dim.
func (a *Array) MedianDim(dim int, keepDim bool) (*Array, error) {
	return a.ReduceDim(dim, keepDim, medianInPlace)
}

// Median returns the median of x, averaging the two middle values when
// len(x) is even. It returns NaN for an empty slice. x is not modified.
func Median(x []float64) float64 {
	cp := make([]float64, len(x))
	copy(cp, x)
	return medianInPlace(cp)
}

// medianInPlace sorts x and returns its median.
func medianInPlace(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	slices.Sort(x)
	mid := n >> 1
	if n&1 == 0 {
		return (x[mid-1] + x[mid]) * 0.5
	}
	return x[mid]
}
