package tensor

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates an array filled with zeros.
// Panics on a negative dimension.
//
// Example:
//
//	a := tensor.Zeros(Shape{3, 4})
func Zeros(shape Shape) *Array {
	a, err := New(shape)
	if err != nil {
		panic(err)
	}
	return a
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a := tensor.Full(Shape{3, 3}, 3.14)
func Full(shape Shape, value float64) *Array {
	a := Zeros(shape)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// Scalar creates a 0-D array holding v.
func Scalar(v float64) *Array {
	return Full(Shape{}, v)
}

// Arange creates a 1-D array with n evenly spaced values over [start, stop].
func Arange(start, stop float64, n int) *Array {
	a := Zeros(Shape{n})
	switch n {
	case 0:
	case 1:
		a.data[0] = start
	default:
		floats.Span(a.data, start, stop)
	}
	return a
}

// Randn creates an array of samples from a normal distribution with the
// given mean and standard deviation. A nil src uses the global source.
func Randn(shape Shape, mean, std float64, src rand.Source) *Array {
	a := Zeros(shape)
	dist := distuv.Normal{Mu: mean, Sigma: std, Src: src}
	for i := range a.data {
		a.data[i] = dist.Rand()
	}
	return a
}
