// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package fmri

import (
	"github.com/born-ml/mmqa/internal/fmri"
	"github.com/born-ml/mmqa/tensor"
)

// Default axes of a time serie.
const (
	DefaultTimeAxis  = fmri.DefaultTimeAxis
	DefaultSliceAxis = fmri.DefaultSliceAxis
)

// DefaultBins is the histogram bin count used for image similarity.
const DefaultBins = fmri.DefaultBins

// NormalConsistency is the standard normal 0.75 quantile (≈ 0.6745).
var NormalConsistency = fmri.NormalConsistency

// Center supplies the value subtracted before taking absolute deviations.
type Center = fmri.Center

// CenterFunc computes the center by reducing an array along an axis.
type CenterFunc = fmri.CenterFunc

// CenterValue is a fixed center.
type CenterValue = fmri.CenterValue

// Built-in centers.
var (
	MedianCenter = fmri.MedianCenter
	MeanCenter   = fmri.MeanCenter
)

// MADConfig configures MedianAbsoluteDeviation.
type MADConfig = fmri.MADConfig

// HistogramConfig configures histogram-based similarity measures.
type HistogramConfig = fmri.HistogramConfig

// DefaultMADConfig returns the Gaussian-consistent estimator along axis 0.
func DefaultMADConfig() MADConfig {
	return fmri.DefaultMADConfig()
}

// DefaultHistogramConfig returns a config with DefaultBins.
func DefaultHistogramConfig() HistogramConfig {
	return fmri.DefaultHistogramConfig()
}

// FormatTimeSerie moves timeAxis to axis 0 and sliceAxis to axis 1.
//
// Example:
//
//	a := tensor.Zeros(tensor.Shape{64, 64, 30, 200}) // (X, Y, Z, T)
//	ts, _ := fmri.FormatTimeSerie(a, -1, -2)         // (T, Z, X, Y)
func FormatTimeSerie(a *tensor.Array, timeAxis, sliceAxis int) (*tensor.Array, error) {
	return fmri.FormatTimeSerie(a, timeAxis, sliceAxis)
}

// TimeSliceDiffs returns the (T-1, S) slice mean squared differences of a
// (T, S, ...) series.
func TimeSliceDiffs(a *tensor.Array) (*tensor.Array, error) {
	return fmri.TimeSliceDiffs(a)
}

// MedianAbsoluteDeviation computes median(|a - center| / c) along cfg.Axis.
func MedianAbsoluteDeviation(a *tensor.Array, cfg MADConfig) (*tensor.Array, error) {
	return fmri.MedianAbsoluteDeviation(a, cfg)
}

// HistRange returns the observed range of a widened by half a bin per side.
func HistRange(a *tensor.Array, bins int) (low, high float64, err error) {
	return fmri.HistRange(a, bins)
}

// Histogram counts a into bins equal-width bins over [low, high].
func Histogram(a *tensor.Array, bins int, low, high float64) ([]float64, error) {
	return fmri.Histogram(a, bins, low, high)
}

// Histogram2D counts element pairs of a and b into a row-major bins × bins grid.
func Histogram2D(a, b *tensor.Array, bins int, rangeA, rangeB [2]float64) ([]float64, error) {
	return fmri.Histogram2D(a, b, bins, rangeA, rangeB)
}

// Entropy returns the Shannon entropy in bits of the normalized weights.
func Entropy(data []float64) (float64, error) {
	return fmri.Entropy(data)
}

// MutualInformation returns H(a) + H(b) - H(a, b) in bits.
//
// Example:
//
//	mi, err := fmri.MutualInformation(ref, moving, fmri.DefaultBins)
func MutualInformation(a, b *tensor.Array, bins int) (float64, error) {
	return fmri.MutualInformation(a, b, bins)
}

// MutualInformationWithConfig is MutualInformation driven by a HistogramConfig.
func MutualInformationWithConfig(a, b *tensor.Array, cfg HistogramConfig) (float64, error) {
	return fmri.MutualInformationWithConfig(a, b, cfg)
}
