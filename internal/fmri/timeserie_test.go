package fmri

import (
	"slices"
	"testing"

	"github.com/born-ml/mmqa/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence returns an array of the given shape holding 0, 1, 2, ...
func sequence(t *testing.T, shape tensor.Shape) *tensor.Array {
	t.Helper()
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = float64(i)
	}
	a, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return a
}

func TestFormatTimeSerie_Layout(t *testing.T) {
	// (X, Y, Z, T) volume series.
	a := sequence(t, tensor.Shape{2, 3, 4, 5})

	ts, err := FormatTimeSerie(a, DefaultTimeAxis, DefaultSliceAxis)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{5, 4, 2, 3}, ts.Shape())

	for x := 0; x < 2; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 4; z++ {
				for tp := 0; tp < 5; tp++ {
					assert.Equal(t, a.At(x, y, z, tp), ts.At(tp, z, x, y))
				}
			}
		}
	}
}

func TestFormatTimeSerie_AllAxisPairs(t *testing.T) {
	shape := tensor.Shape{2, 3, 4, 5}
	a := sequence(t, shape)
	ndim := len(shape)

	wantLens := slices.Clone([]int(shape))
	slices.Sort(wantLens)

	for timeAxis := -ndim; timeAxis < ndim; timeAxis++ {
		for sliceAxis := -ndim; sliceAxis < ndim; sliceAxis++ {
			tn, sn := (timeAxis+ndim)%ndim, (sliceAxis+ndim)%ndim
			if tn == sn {
				continue
			}

			ts, err := FormatTimeSerie(a, timeAxis, sliceAxis)
			require.NoError(t, err, "time %d slice %d", timeAxis, sliceAxis)

			got := ts.Shape()
			assert.Equal(t, shape[tn], got[0], "time %d slice %d", timeAxis, sliceAxis)
			assert.Equal(t, shape[sn], got[1], "time %d slice %d", timeAxis, sliceAxis)

			gotLens := slices.Clone([]int(got))
			slices.Sort(gotLens)
			assert.Equal(t, wantLens, gotLens)

			// Remaining axes keep their relative order.
			var rest, wantRest []int
			for i, d := range shape {
				if i != tn && i != sn {
					wantRest = append(wantRest, d)
				}
			}
			rest = append(rest, got[2:]...)
			assert.Equal(t, wantRest, rest, "time %d slice %d", timeAxis, sliceAxis)
		}
	}
}

func TestFormatTimeSerie_TimeBeforeSlice(t *testing.T) {
	// (T, X, S) with time ahead of slice.
	a := sequence(t, tensor.Shape{3, 4, 2})

	ts, err := FormatTimeSerie(a, 0, 2)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{3, 2, 4}, ts.Shape())
	assert.Equal(t, a.At(2, 1, 1), ts.At(2, 1, 1))
	assert.Equal(t, a.At(1, 3, 0), ts.At(1, 0, 3))
}

func TestFormatTimeSerie_DoesNotMutate(t *testing.T) {
	a := sequence(t, tensor.Shape{2, 3, 4})
	before := slices.Clone(a.Data())

	_, err := FormatTimeSerie(a, -1, -2)
	require.NoError(t, err)
	assert.Equal(t, before, a.Data())
	assert.Equal(t, tensor.Shape{2, 3, 4}, a.Shape())
}

func TestFormatTimeSerie_InvalidAxes(t *testing.T) {
	a := tensor.Zeros(tensor.Shape{2, 3, 4})

	tests := []struct {
		name                string
		timeAxis, sliceAxis int
	}{
		{"same_axis", 1, 1},
		{"same_after_normalization", -1, 2},
		{"time_out_of_range", 3, 0},
		{"slice_out_of_range", 0, 3},
		{"time_too_negative", -4, 0},
		{"slice_too_negative", 0, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FormatTimeSerie(a, tt.timeAxis, tt.sliceAxis)
			assert.ErrorIs(t, err, tensor.ErrInvalidAxis)
		})
	}
}

func TestTimeSliceDiffs_Constant(t *testing.T) {
	a := tensor.Full(tensor.Shape{6, 4, 3, 3}, 42)

	smd2, err := TimeSliceDiffs(a)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{5, 4}, smd2.Shape())
	assert.Equal(t, make([]float64, 20), smd2.Data())
}

func TestTimeSliceDiffs_Values(t *testing.T) {
	// T=3, S=2, 2 voxels per slice.
	a, err := tensor.FromSlice([]float64{
		0, 0, 0, 0, // t=0
		1, 3, 2, 2, // t=1
		1, 3, 0, 0, // t=2
	}, tensor.Shape{3, 2, 2})
	require.NoError(t, err)

	smd2, err := TimeSliceDiffs(a)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{2, 2}, smd2.Shape())

	// t=0→1: slice 0 mean(1, 9) = 5, slice 1 mean(4, 4) = 4
	// t=1→2: slice 0 mean(0, 0) = 0, slice 1 mean(4, 4) = 4
	assert.Equal(t, []float64{5, 4, 0, 4}, smd2.Data())
}

func TestTimeSliceDiffs_AfterFormat(t *testing.T) {
	// (X, Y, S, T) where every voxel equals its time index.
	a := tensor.Zeros(tensor.Shape{2, 2, 3, 4})
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for s := 0; s < 3; s++ {
				for tp := 0; tp < 4; tp++ {
					a.Set(float64(tp*(s+1)), x, y, s, tp)
				}
			}
		}
	}

	ts, err := FormatTimeSerie(a, DefaultTimeAxis, DefaultSliceAxis)
	require.NoError(t, err)

	smd2, err := TimeSliceDiffs(ts)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{3, 3}, smd2.Shape())
	for tp := 0; tp < 3; tp++ {
		for s := 0; s < 3; s++ {
			want := float64((s + 1) * (s + 1))
			assert.Equal(t, want, smd2.At(tp, s))
		}
	}
}

func TestTimeSliceDiffs_Errors(t *testing.T) {
	t.Run("too_few_dims", func(t *testing.T) {
		_, err := TimeSliceDiffs(tensor.Zeros(tensor.Shape{4, 3}))
		assert.ErrorIs(t, err, tensor.ErrShape)
	})

	t.Run("single_timepoint", func(t *testing.T) {
		_, err := TimeSliceDiffs(tensor.Zeros(tensor.Shape{1, 3, 2}))
		assert.ErrorIs(t, err, tensor.ErrShape)
	})

	t.Run("no_voxels", func(t *testing.T) {
		_, err := TimeSliceDiffs(tensor.Zeros(tensor.Shape{3, 3, 0}))
		assert.ErrorIs(t, err, tensor.ErrEmptyInput)
	})
}
