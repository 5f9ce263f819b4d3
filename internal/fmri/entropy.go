package fmri

import (
	"fmt"
	"math"

	"github.com/born-ml/mmqa/internal/tensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Entropy returns the Shannon entropy, in bits, of the distribution
// obtained by normalizing the non-negative weights in data (typically
// histogram counts). Empty bins contribute nothing.
func Entropy(data []float64) (float64, error) {
	sum := floats.Sum(data)
	if sum == 0 {
		return 0, fmt.Errorf("entropy: %w: weights sum to zero", tensor.ErrDivisionByZero)
	}

	p := make([]float64, len(data))
	floats.ScaleTo(p, 1/sum, data)

	// stat.Entropy uses the natural logarithm.
	return stat.Entropy(p) / math.Ln2, nil
}
