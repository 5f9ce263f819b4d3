package fmri

import (
	"fmt"
	"math"

	"github.com/born-ml/mmqa/internal/tensor"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalConsistency is the standard normal 0.75 quantile (≈ 0.6745).
// Dividing the median absolute deviation by it yields a consistent
// estimator of the standard deviation for Gaussian data.
var NormalConsistency = distuv.UnitNormal.Quantile(0.75)

// Center supplies the value subtracted from an array before taking
// absolute deviations. It is implemented by CenterFunc and CenterValue.
type Center interface {
	center(a *tensor.Array, axis int) (*tensor.Array, error)
}

// CenterFunc computes the center by reducing a along axis.
// The result may keep the reduced axis with size 1 or drop it; a dropped
// axis is restored so the center broadcasts against a.
type CenterFunc func(a *tensor.Array, axis int) (*tensor.Array, error)

func (f CenterFunc) center(a *tensor.Array, axis int) (*tensor.Array, error) {
	c, err := f(a, axis)
	if err != nil {
		return nil, err
	}

	switch c.NDim() {
	case a.NDim():
		return c, nil
	case a.NDim() - 1:
		shape := make(tensor.Shape, 0, a.NDim())
		shape = append(shape, c.Shape()[:axis]...)
		shape = append(shape, 1)
		shape = append(shape, c.Shape()[axis:]...)
		return c.Reshape(shape)
	default:
		return nil, fmt.Errorf("%w: center of %v along axis %d has shape %v", tensor.ErrShape, a.Shape(), axis, c.Shape())
	}
}

// CenterValue is a fixed center shared by every element.
type CenterValue float64

func (v CenterValue) center(*tensor.Array, int) (*tensor.Array, error) {
	return tensor.Scalar(float64(v)), nil
}

// MedianCenter centers on the median along the reduced axis.
var MedianCenter = CenterFunc(func(a *tensor.Array, axis int) (*tensor.Array, error) {
	return a.MedianDim(axis, true)
})

// MeanCenter centers on the arithmetic mean along the reduced axis.
var MeanCenter = CenterFunc(func(a *tensor.Array, axis int) (*tensor.Array, error) {
	return a.MeanDim(axis, true)
})

// MADConfig configures MedianAbsoluteDeviation.
type MADConfig struct {
	Scale  float64 // Normalization constant c; must be non-zero.
	Axis   int     // Axis reduced by the center and the final median.
	Center Center  // Nil means MedianCenter.
}

// DefaultMADConfig returns the Gaussian-consistent estimator along axis 0.
func DefaultMADConfig() MADConfig {
	return MADConfig{
		Scale:  NormalConsistency,
		Axis:   0,
		Center: MedianCenter,
	}
}

// MedianAbsoluteDeviation computes median(|a - center| / c) along cfg.Axis.
//
// The reduced axis is removed from the result, so a 1-D input yields a 0-D
// array whose Item is the estimate.
//
// Example:
//
//	mad, _ := fmri.MedianAbsoluteDeviation(a, fmri.DefaultMADConfig())
//	sigma := mad.Item()
func MedianAbsoluteDeviation(a *tensor.Array, cfg MADConfig) (*tensor.Array, error) {
	if cfg.Scale == 0 {
		return nil, fmt.Errorf("median absolute deviation: %w: normalization constant is zero", tensor.ErrDivisionByZero)
	}
	if a.NumElements() == 0 {
		return nil, fmt.Errorf("median absolute deviation: %w", tensor.ErrEmptyInput)
	}

	axis, err := tensor.NormalizeAxis(cfg.Axis, a.NDim())
	if err != nil {
		return nil, fmt.Errorf("median absolute deviation: %w", err)
	}

	center := cfg.Center
	if center == nil {
		center = MedianCenter
	}
	c, err := center.center(a, axis)
	if err != nil {
		return nil, fmt.Errorf("median absolute deviation: %w", err)
	}

	dev, err := a.Sub(c)
	if err != nil {
		return nil, fmt.Errorf("median absolute deviation: %w", err)
	}
	dev = dev.Map(func(v float64) float64 {
		return math.Abs(v) / cfg.Scale
	})

	return dev.MedianDim(axis, false)
}
