package fmri

import (
	"math/rand/v2"
	"testing"

	"github.com/born-ml/mmqa/internal/tensor"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestNormalConsistency(t *testing.T) {
	assert.InDelta(t, 0.6744897501960817, NormalConsistency, 1e-12)
	assert.Equal(t, NormalConsistency, DefaultMADConfig().Scale)
}

func TestMedianAbsoluteDeviation_1D(t *testing.T) {
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 100}, tensor.Shape{5})
	require.NoError(t, err)

	mad, err := MedianAbsoluteDeviation(a, DefaultMADConfig())
	require.NoError(t, err)

	// |a - 3| = [2, 1, 0, 1, 97], median 1.
	assert.Equal(t, 0, mad.NDim())
	assert.InDelta(t, 1/NormalConsistency, mad.Item(), 1e-12)
}

func TestMedianAbsoluteDeviation_Axis(t *testing.T) {
	a, err := tensor.FromSlice([]float64{
		1, 10, 0,
		2, 20, 0,
		4, 40, 0,
		8, 80, 0,
	}, tensor.Shape{4, 3})
	require.NoError(t, err)

	t.Run("axis_0", func(t *testing.T) {
		mad, err := MedianAbsoluteDeviation(a, MADConfig{Scale: 1, Axis: 0, Center: MedianCenter})
		require.NoError(t, err)
		require.Equal(t, tensor.Shape{3}, mad.Shape())

		// Column 0: median 3, |dev| = [2, 1, 1, 5] → 1.5.
		want := []float64{1.5, 15, 0}
		if diff := cmp.Diff(want, mad.Data(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("MedianAbsoluteDeviation() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("axis_last", func(t *testing.T) {
		mad, err := MedianAbsoluteDeviation(a, MADConfig{Scale: 1, Axis: -1, Center: MedianCenter})
		require.NoError(t, err)
		require.Equal(t, tensor.Shape{4}, mad.Shape())

		// Row [1, 10, 0]: median 1, |dev| = [0, 9, 1] → 1.
		assert.Equal(t, []float64{1, 2, 4, 8}, mad.Data())
	})
}

func TestMedianAbsoluteDeviation_Centers(t *testing.T) {
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 10}, tensor.Shape{5})
	require.NoError(t, err)

	tests := []struct {
		name   string
		center Center
		want   float64
	}{
		// |a - 0| = a, median 3.
		{"fixed_value", CenterValue(0), 3},
		// mean 4, |dev| = [3, 2, 1, 0, 6] → 2.
		{"mean", MeanCenter, 2},
		// median 3, |dev| = [2, 1, 0, 1, 7] → 1.
		{"median", MedianCenter, 1},
		{"nil_defaults_to_median", nil, 1},
		{"reducer_dropping_axis", CenterFunc(func(a *tensor.Array, axis int) (*tensor.Array, error) {
			return a.MedianDim(axis, false)
		}), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mad, err := MedianAbsoluteDeviation(a, MADConfig{Scale: 1, Center: tt.center})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, mad.Item(), 1e-12)
		})
	}
}

func TestMedianAbsoluteDeviation_RecoversGaussianStd(t *testing.T) {
	const sigma = 2.5
	a := tensor.Randn(tensor.Shape{20000}, 10, sigma, rand.NewPCG(7, 11))

	mad, err := MedianAbsoluteDeviation(a, DefaultMADConfig())
	require.NoError(t, err)

	std := stat.StdDev(a.Data(), nil)
	assert.InDelta(t, sigma, mad.Item(), 0.1)
	assert.InDelta(t, std, mad.Item(), 0.1)
}

func TestMedianAbsoluteDeviation_Errors(t *testing.T) {
	a := tensor.Full(tensor.Shape{3, 2}, 1)

	t.Run("zero_scale", func(t *testing.T) {
		_, err := MedianAbsoluteDeviation(a, MADConfig{Scale: 0})
		assert.ErrorIs(t, err, tensor.ErrDivisionByZero)
	})

	t.Run("invalid_axis", func(t *testing.T) {
		cfg := DefaultMADConfig()
		cfg.Axis = 2
		_, err := MedianAbsoluteDeviation(a, cfg)
		assert.ErrorIs(t, err, tensor.ErrInvalidAxis)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := MedianAbsoluteDeviation(tensor.Zeros(tensor.Shape{0}), DefaultMADConfig())
		assert.ErrorIs(t, err, tensor.ErrEmptyInput)
	})

	t.Run("bad_center_shape", func(t *testing.T) {
		cfg := DefaultMADConfig()
		cfg.Center = CenterFunc(func(*tensor.Array, int) (*tensor.Array, error) {
			return tensor.Zeros(tensor.Shape{1, 1, 1, 1}), nil
		})
		_, err := MedianAbsoluteDeviation(a, cfg)
		assert.ErrorIs(t, err, tensor.ErrShape)
	})
}
