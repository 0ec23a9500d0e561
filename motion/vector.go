package motion

import "gonum.org/v1/gonum/floats"

// subVec returns a-b as a freshly allocated vector. Element-wise array
// arithmetic is treated as a mathematical primitive here and delegated to
// gonum/floats rather than hand-rolled, the way the original source treated
// ml::min/ml::mul/ml::div as external helpers.
func subVec(a, b []float64) []float64 {
	out := make([]float64, len(a))
	floats.SubTo(out, a, b)
	return out
}

func scaleVec(a []float64, s float64) []float64 {
	out := make([]float64, len(a))
	copy(out, a)
	floats.Scale(s, out)
	return out
}

func dotVec(a, b []float64) float64 {
	return floats.Dot(a, b)
}

func normVec(a []float64) float64 {
	return floats.Norm(a, 2)
}

// unitVector returns a/|a|, or a zero vector when a is degenerate.
func unitVector(a []float64) []float64 {
	n := normVec(a)
	if n == 0 {
		return make([]float64, len(a))
	}
	return scaleVec(a, 1/n)
}
