package fmri

import (
	"fmt"

	"github.com/born-ml/mmqa/internal/tensor"
)

// MutualInformation measures how much knowing the intensities of a reduces
// uncertainty about the intensities of b, in bits.
//
// a and b must have the same shape; elements are paired voxel by voxel.
// Each array is binned over its own HistRange. The result is
// H(a) + H(b) - H(a, b) and may be slightly negative for nearly
// independent inputs because of binning.
func MutualInformation(a, b *tensor.Array, bins int) (float64, error) {
	return MutualInformationWithConfig(a, b, HistogramConfig{Bins: bins})
}

// MutualInformationWithConfig is MutualInformation driven by a HistogramConfig.
func MutualInformationWithConfig(a, b *tensor.Array, cfg HistogramConfig) (float64, error) {
	if !a.Shape().Equal(b.Shape()) {
		return 0, fmt.Errorf("mutual information: %w: the two arrays must have the same shape, got %v and %v",
			tensor.ErrShapeMismatch, a.Shape(), b.Shape())
	}

	loA, hiA, err := HistRange(a, cfg.Bins)
	if err != nil {
		return 0, fmt.Errorf("mutual information: %w", err)
	}
	loB, hiB, err := HistRange(b, cfg.Bins)
	if err != nil {
		return 0, fmt.Errorf("mutual information: %w", err)
	}

	joint, err := Histogram2D(a, b, cfg.Bins, [2]float64{loA, hiA}, [2]float64{loB, hiB})
	if err != nil {
		return 0, fmt.Errorf("mutual information: %w", err)
	}
	histA, err := Histogram(a, cfg.Bins, loA, hiA)
	if err != nil {
		return 0, fmt.Errorf("mutual information: %w", err)
	}
	histB, err := Histogram(b, cfg.Bins, loB, hiB)
	if err != nil {
		return 0, fmt.Errorf("mutual information: %w", err)
	}

	jointEntropy, err := Entropy(joint)
	if err != nil {
		return 0, fmt.Errorf("mutual information: joint %w", err)
	}
	entropyA, err := Entropy(histA)
	if err != nil {
		return 0, fmt.Errorf("mutual information: %w", err)
	}
	entropyB, err := Entropy(histB)
	if err != nil {
		return 0, fmt.Errorf("mutual information: %w", err)
	}

	return entropyA + entropyB - jointEntropy, nil
}
