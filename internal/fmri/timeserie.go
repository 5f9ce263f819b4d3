// Package fmri implements the numeric routines of the fMRI quality-assurance
// pipeline: time-series axis normalization, slice differences, robust
// dispersion and histogram-based image similarity.
package fmri

import (
	"fmt"

	"github.com/born-ml/mmqa/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// Default axes of a time serie: time varies along the last axis and slices
// along the last non-time axis.
const (
	DefaultTimeAxis  = -1
	DefaultSliceAxis = -2
)

// FormatTimeSerie reorders a so that timeAxis becomes axis 0 and sliceAxis
// becomes axis 1. The remaining axes keep their relative order.
//
// Negative axes count from the end. ErrInvalidAxis is returned when both
// axes refer to the same dimension or either one is out of range.
//
// Example:
//
//	a := tensor.Zeros(tensor.Shape{64, 64, 30, 200}) // (X, Y, Z, T)
//	ts, _ := fmri.FormatTimeSerie(a, -1, -2)         // (T, Z, X, Y)
func FormatTimeSerie(a *tensor.Array, timeAxis, sliceAxis int) (*tensor.Array, error) {
	ndim := a.NDim()
	if timeAxis < 0 {
		timeAxis += ndim
	}
	if sliceAxis < 0 {
		sliceAxis += ndim
	}

	if timeAxis == sliceAxis {
		return nil, fmt.Errorf("%w: time axis refers to same axis as slice axis (%d)", tensor.ErrInvalidAxis, timeAxis)
	}
	if timeAxis < 0 || timeAxis >= ndim {
		return nil, fmt.Errorf("%w: invalid time axis %d for %dD array", tensor.ErrInvalidAxis, timeAxis, ndim)
	}
	if sliceAxis < 0 || sliceAxis >= ndim {
		return nil, fmt.Errorf("%w: invalid slice axis %d for %dD array", tensor.ErrInvalidAxis, sliceAxis, ndim)
	}

	out, err := a.MoveAxis(timeAxis, 0)
	if err != nil {
		return nil, err
	}

	// Moving time first shifts every axis that preceded it.
	if timeAxis > sliceAxis {
		sliceAxis++
	}

	return out.MoveAxis(sliceAxis, 1)
}

// TimeSliceDiffs computes time-point to time-point differences over volumes
// and slices.
//
// a must be laid out as (T, S, ...), see FormatTimeSerie. The result has
// shape (T-1, S): element [t, s] is the mean over the voxels of slice s of
// the squared difference between time points t+1 and t.
func TimeSliceDiffs(a *tensor.Array) (*tensor.Array, error) {
	shape := a.Shape()
	if len(shape) < 3 {
		return nil, fmt.Errorf("%w: time slice diffs need (T, S, ...) with at least one voxel axis, got %v",
			tensor.ErrShape, shape)
	}

	timepoints, slices := shape[0], shape[1]
	if timepoints < 2 {
		return nil, fmt.Errorf("%w: time slice diffs need at least 2 time points, got %d", tensor.ErrShape, timepoints)
	}

	voxels := shape[2:].NumElements()
	if voxels == 0 || slices == 0 {
		return nil, fmt.Errorf("time slice diffs: %w: no voxels in shape %v", tensor.ErrEmptyInput, shape)
	}

	out := tensor.Zeros(tensor.Shape{timepoints - 1, slices})
	smd2 := out.Data()
	data := a.Data()
	frame := slices * voxels
	diff := make([]float64, voxels)

	for t := 0; t < timepoints-1; t++ {
		for s := 0; s < slices; s++ {
			cur := data[t*frame+s*voxels : t*frame+(s+1)*voxels]
			next := data[(t+1)*frame+s*voxels : (t+1)*frame+(s+1)*voxels]
			floats.SubTo(diff, next, cur)
			smd2[t*slices+s] = floats.Dot(diff, diff) / float64(voxels)
		}
	}

	return out, nil
}
