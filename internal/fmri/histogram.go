package fmri

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/born-ml/mmqa/internal/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the histogram bin count used for image similarity.
const DefaultBins = 256

// HistogramConfig configures histogram-based similarity measures.
type HistogramConfig struct {
	Bins int // Bin count of each marginal and of both joint axes.
}

// DefaultHistogramConfig returns a config with DefaultBins.
func DefaultHistogramConfig() HistogramConfig {
	return HistogramConfig{Bins: DefaultBins}
}

// HistRange returns the histogram range of the values in a: the observed
// range widened by half a bin on each side, so that the extreme values sit
// at the centers of the outer bins.
func HistRange(a *tensor.Array, bins int) (low, high float64, err error) {
	if bins <= 1 {
		return 0, 0, fmt.Errorf("hist range: %w: need at least 2 bins, got %d", tensor.ErrDivisionByZero, bins)
	}
	lo, err := a.Min()
	if err != nil {
		return 0, 0, fmt.Errorf("hist range: %w", err)
	}
	hi, err := a.Max()
	if err != nil {
		return 0, 0, fmt.Errorf("hist range: %w", err)
	}

	s := 0.5 * (hi - lo) / float64(bins-1)
	return lo - s, hi + s, nil
}

// Histogram counts the values of a into bins equal-width bins over
// [low, high]. The last bin is closed; values outside the range are ignored.
// A zero-width range is widened to [low-0.5, high+0.5].
func Histogram(a *tensor.Array, bins int, low, high float64) ([]float64, error) {
	edges, err := binEdges(bins, low, high)
	if err != nil {
		return nil, err
	}

	x := make([]float64, 0, a.NumElements())
	for _, v := range a.Data() {
		if v >= edges[0] && v < edges[bins] {
			x = append(x, v)
		}
	}
	slices.Sort(x)

	return stat.Histogram(nil, edges, x, nil), nil
}

// Histogram2D counts the element pairs (a[i], b[i]) into a bins × bins grid
// over rangeA × rangeB. The result is row-major: the count for bin i of a
// and bin j of b is at [i*bins+j].
func Histogram2D(a, b *tensor.Array, bins int, rangeA, rangeB [2]float64) ([]float64, error) {
	if a.NumElements() != b.NumElements() {
		return nil, fmt.Errorf("histogram2d: %w: %v vs %v", tensor.ErrShapeMismatch, a.Shape(), b.Shape())
	}
	edgesA, err := binEdges(bins, rangeA[0], rangeA[1])
	if err != nil {
		return nil, err
	}
	edgesB, err := binEdges(bins, rangeB[0], rangeB[1])
	if err != nil {
		return nil, err
	}

	counts := make([]float64, bins*bins)
	dataB := b.Data()
	for k, va := range a.Data() {
		i, ok := binIndex(edgesA, va)
		if !ok {
			continue
		}
		j, ok := binIndex(edgesB, dataB[k])
		if !ok {
			continue
		}
		counts[i*bins+j]++
	}
	return counts, nil
}

// binEdges returns bins+1 increasing dividers over [low, high]. The last
// divider is nudged past high so that high itself falls in the last bin
// under half-open [d_i, d_i+1) counting.
func binEdges(bins int, low, high float64) ([]float64, error) {
	if bins < 1 {
		return nil, fmt.Errorf("histogram: %w: need at least 1 bin, got %d", tensor.ErrShape, bins)
	}
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || low > high {
		return nil, fmt.Errorf("histogram: invalid range [%v, %v]", low, high)
	}
	if low == high {
		low -= 0.5
		high += 0.5
	}

	edges := floats.Span(make([]float64, bins+1), low, high)
	edges[bins] = math.Nextafter(high, math.Inf(1))
	return edges, nil
}

// binIndex locates v among edges using the same half-open convention as
// stat.Histogram.
func binIndex(edges []float64, v float64) (int, bool) {
	if !(v >= edges[0] && v < edges[len(edges)-1]) {
		return 0, false
	}
	return sort.Search(len(edges), func(k int) bool { return edges[k] > v }) - 1, true
}
