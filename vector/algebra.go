package vector

import (
	"fmt"
	"math"
)

// Compare orders two vectors lexicographically: the first differing index
// decides, -1 when a sorts before b, 1 when after, 0 when equal. It returns
// ErrDimensionMismatch if the dimensions differ.
func Compare(a, b []float32) (int, error) {
	if len(a) != len(b) {
		return 0, dimMismatch("compare", a, b)
	}
	for i := range a {
		if a[i] < b[i] {
			return -1, nil
		}
		if a[i] > b[i] {
			return 1, nil
		}
	}
	return 0, nil
}

// CosineSimilarity computes dot(a,b) / (|a|*|b|) with float64 accumulators.
// There is no zero-magnitude guard: a zero operand yields the IEEE result
// (NaN), which SQLite surfaces as NULL.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, dimMismatch("cosine similarity", a, b)
	}
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	return dot / math.Sqrt(na2*nb2), nil
}

// EuclideanDistance computes the L2 distance between two vectors with a
// float64 accumulator.
func EuclideanDistance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, dimMismatch("euclidean distance", a, b)
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Mean returns the arithmetic mean of the elements, accumulated in float64.
// A dimension-0 vector yields the IEEE 0/0 result (NaN).
func Mean(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x)
	}
	return sum / float64(len(v))
}

// Norm returns the L2 norm of the vector, accumulated in float64.
func Norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// Add returns the elementwise sum of two equal-dimension vectors.
func Add(a, b []float32) ([]float32, error) {
	if len(a) != len(b) {
		return nil, dimMismatch("add", a, b)
	}
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// Sub returns the elementwise difference of two equal-dimension vectors.
func Sub(a, b []float32) ([]float32, error) {
	if len(a) != len(b) {
		return nil, dimMismatch("sub", a, b)
	}
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// Mul returns the elementwise (Hadamard) product of two equal-dimension
// vectors.
func Mul(a, b []float32) ([]float32, error) {
	if len(a) != len(b) {
		return nil, dimMismatch("mul", a, b)
	}
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out, nil
}

// Div returns the elementwise quotient of two equal-dimension vectors. There
// is no zero check; division follows IEEE 754 single-precision semantics,
// including ±Inf and NaN results.
func Div(a, b []float32) ([]float32, error) {
	if len(a) != len(b) {
		return nil, dimMismatch("div", a, b)
	}
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] / b[i]
	}
	return out, nil
}

func dimMismatch(op string, a, b []float32) error {
	return fmt.Errorf("vector: %s: %d vs %d: %w", op, len(a), len(b), ErrDimensionMismatch)
}
