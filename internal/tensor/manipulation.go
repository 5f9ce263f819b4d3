package tensor

import "fmt"

// Reshape returns a copy of the array with a new shape.
// At most one dimension may be -1; its size is inferred from the rest.
//
// Example:
//
//	a := tensor.Zeros(Shape{4, 3, 2})
//	b, _ := a.Reshape(Shape{4, -1}) // shape: [4, 6]
func (a *Array) Reshape(shape Shape) (*Array, error) {
	newShape := shape.Clone()
	inferred := -1
	known := 1
	for i, dim := range newShape {
		switch {
		case dim == -1 && inferred >= 0:
			return nil, fmt.Errorf("reshape: %w: only one dimension can be inferred in %v", ErrShape, shape)
		case dim == -1:
			inferred = i
		case dim < 0:
			return nil, fmt.Errorf("reshape: %w: invalid dimension %d in %v", ErrShape, dim, shape)
		default:
			known *= dim
		}
	}

	if inferred >= 0 {
		if known == 0 || len(a.data)%known != 0 {
			return nil, fmt.Errorf("reshape: %w: cannot infer dimension of %v from %d elements",
				ErrShape, shape, len(a.data))
		}
		newShape[inferred] = len(a.data) / known
	}

	return FromSlice(a.data, newShape)
}

// Flatten returns a 1-D copy of the array.
func (a *Array) Flatten() *Array {
	out := Zeros(Shape{len(a.data)})
	copy(out.data, a.data)
	return out
}

// Permute reorders the array's dimensions.
// Output dimension i is input dimension axes[i]; negative axes count from the end.
//
// Example:
//
//	a := tensor.Zeros(Shape{2, 3, 4})
//	b, _ := a.Permute(2, 0, 1) // shape: [4, 2, 3]
func (a *Array) Permute(axes ...int) (*Array, error) {
	ndim := len(a.shape)
	if len(axes) != ndim {
		return nil, fmt.Errorf("permute: %w: axes length %d != ndim %d", ErrInvalidAxis, len(axes), ndim)
	}

	normalized := make([]int, ndim)
	seen := make([]bool, ndim)
	for i, ax := range axes {
		n, err := NormalizeAxis(ax, ndim)
		if err != nil {
			return nil, fmt.Errorf("permute: %w", err)
		}
		if seen[n] {
			return nil, fmt.Errorf("permute: %w: duplicate axis %d", ErrInvalidAxis, n)
		}
		seen[n] = true
		normalized[i] = n
	}

	newShape := make(Shape, ndim)
	for i, ax := range normalized {
		newShape[i] = a.shape[ax]
	}

	out := Zeros(newShape)
	permuteData(out.data, a.data, a.shape, normalized)
	return out, nil
}

// MoveAxis rolls axis backwards until it lies before position start,
// keeping the relative order of every other axis.
//
// start may range over [0, ndim]; negative values count from the end.
//
// Example:
//
//	a := tensor.Zeros(Shape{3, 4, 5, 6})
//	b, _ := a.MoveAxis(3, 1) // shape: [3, 6, 4, 5]
func (a *Array) MoveAxis(axis, start int) (*Array, error) {
	ndim := len(a.shape)
	axis, err := NormalizeAxis(axis, ndim)
	if err != nil {
		return nil, fmt.Errorf("moveaxis: %w", err)
	}
	if start < 0 {
		start += ndim
	}
	if start < 0 || start > ndim {
		return nil, fmt.Errorf("moveaxis: %w: start %d out of range for %dD array", ErrInvalidAxis, start, ndim)
	}
	if axis < start {
		start--
	}
	if axis == start {
		return a.Clone(), nil
	}

	order := make([]int, 0, ndim)
	for i := 0; i < ndim; i++ {
		if i != axis {
			order = append(order, i)
		}
	}
	order = append(order[:start], append([]int{axis}, order[start:]...)...)

	return a.Permute(order...)
}

// permuteData copies src into dst with dimensions reordered by axes.
func permuteData(dst, src []float64, shape Shape, axes []int) {
	ndim := len(shape)
	srcStrides := shape.ComputeStrides()

	dstShape := make(Shape, ndim)
	for i, ax := range axes {
		dstShape[i] = shape[ax]
	}
	dstStrides := dstShape.ComputeStrides()

	coords := make([]int, ndim)
	for i := range src {
		idx := i
		for dim := 0; dim < ndim; dim++ {
			coords[dim] = idx / srcStrides[dim]
			idx %= srcStrides[dim]
		}

		dstIdx := 0
		for dstDim, srcDim := range axes {
			dstIdx += coords[srcDim] * dstStrides[dstDim]
		}

		dst[dstIdx] = src[i]
	}
}
