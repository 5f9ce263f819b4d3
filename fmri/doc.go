// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fmri provides the numeric routines of fMRI quality assurance.
//
// # Time series
//
// FormatTimeSerie reorders a volume series so that time is axis 0 and the
// slice axis is axis 1. TimeSliceDiffs then reports, per pair of
// consecutive time points and per slice, the mean squared voxel difference:
//
//	ts, err := fmri.FormatTimeSerie(series, fmri.DefaultTimeAxis, fmri.DefaultSliceAxis)
//	if err != nil {
//	    return err
//	}
//	smd2, err := fmri.TimeSliceDiffs(ts) // Shape: [T-1, S]
//
// # Robust dispersion
//
// MedianAbsoluteDeviation scales the median absolute deviation by
// NormalConsistency so it estimates the standard deviation of Gaussian data.
// The center is either a reduction (MedianCenter, MeanCenter, any
// CenterFunc) or a fixed CenterValue:
//
//	cfg := fmri.DefaultMADConfig()
//	cfg.Axis = -1
//	sigma, err := fmri.MedianAbsoluteDeviation(smd2, cfg)
//
// # Image similarity
//
// MutualInformation compares two images of the same shape through their
// joint and marginal intensity histograms:
//
//	mi, err := fmri.MutualInformation(ref, moving, fmri.DefaultBins)
//
// All functions are pure: they never modify their inputs and are safe to
// call concurrently on independent data.
package fmri
