package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Map returns a new array with f applied element-wise.
func (a *Array) Map(f func(float64) float64) *Array {
	out := Zeros(a.shape)
	for i, v := range a.data {
		out.data[i] = f(v)
	}
	return out
}

// Sub returns a - b element-wise with NumPy-style broadcasting.
func (a *Array) Sub(b *Array) (*Array, error) {
	outShape, needsBroadcast, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, fmt.Errorf("sub: %w", err)
	}

	out := Zeros(outShape)
	if !needsBroadcast {
		floats.SubTo(out.data, a.data, b.data)
		return out, nil
	}

	aStrides := broadcastStrides(a.shape, outShape)
	bStrides := broadcastStrides(b.shape, outShape)
	outStrides := out.stride

	for i := range out.data {
		aIdx, bIdx := 0, 0
		idx := i
		for d := range outShape {
			coord := idx / outStrides[d]
			idx %= outStrides[d]
			aIdx += coord * aStrides[d]
			bIdx += coord * bStrides[d]
		}
		out.data[i] = a.data[aIdx] - b.data[bIdx]
	}
	return out, nil
}

// broadcastStrides returns strides of shape aligned to the right of outShape,
// with zero strides along broadcast (size-1 or missing) dimensions.
func broadcastStrides(shape, outShape Shape) []int {
	strides := shape.ComputeStrides()
	result := make([]int, len(outShape))
	offset := len(outShape) - len(shape)
	for d := range shape {
		if shape[d] != 1 {
			result[offset+d] = strides[d]
		}
	}
	return result
}
