package motion

import "math"

// cornerRatio computes the multiplicative exit-velocity factor for the
// corner formed at vertex b by the neighbouring waypoints a and c:
//
//	r = (|cos θ|)^CornerVelocityRatio * π
//
// clamped into [maxRatio, +Inf). θ is the angle at b between the rays to a
// and c. A straight line (|cos θ| == 1) therefore scales by π (> 1,
// interpreted downstream as "do not reduce"); a sharp corner (cos θ → 0)
// drives the ratio toward zero, floored at maxRatio. NaN/Inf results (a
// zero-length neighbour) also clamp to maxRatio. Because the cosine is taken
// as an absolute value, a full reversal (c back on the a side of b) also has
// |cos θ| == 1 and scales by π, exactly like a straight line.
//
// The π factor comes straight from the original ArrayMath.hpp/Utils.hpp
// (`ratio = powf(ratio, 5.0) / pi_d` with `pi_d = 1/π`, i.e. multiplication
// by π) — see spec.md §4.2/§9 for the open question about whether this was
// intentional.
func cornerRatio(a, b, c []float64, maxRatio, velocityExponent float64) float64 {
	ab := subVec(a, b)
	cb := subVec(c, b)

	ratio := math.Abs(dotVec(ab, cb) / (normVec(ab) * normVec(cb)))
	ratio = math.Pow(ratio, velocityExponent) * math.Pi

	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio < maxRatio {
		return maxRatio
	}
	return ratio
}
