package motion

import (
	"math"
	"testing"
)

func TestCornerRatioStraightLine(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, 0, 0}
	c := []float64{2, 0, 0}

	r := cornerRatio(a, b, c, DefaultCornerMaxRatio, DefaultCornerVelocityRatio)
	if !almostEqual(r, math.Pi, 1e-6) {
		t.Errorf("straight-line corner ratio = %v, want pi", r)
	}
}

func TestCornerRatioRightAngleClampsToFloor(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, 0, 0}
	c := []float64{1, 1, 0}

	r := cornerRatio(a, b, c, DefaultCornerMaxRatio, DefaultCornerVelocityRatio)
	if !almostEqual(r, DefaultCornerMaxRatio, 1e-6) {
		t.Errorf("right-angle corner ratio = %v, want floor %v", r, DefaultCornerMaxRatio)
	}
}

// A full reversal (c coincides with a) puts BA and BC in the same
// direction, so |cos| is indistinguishable from the straight-line case —
// the formula's use of an absolute value can't tell a 180-degree pass
// through from a 180-degree turn-back. This is the inherited quirk noted
// in the corner-ratio doc comment, not a bug in this port.
func TestCornerRatioFullReversalMatchesStraightLine(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, 0, 0}
	c := []float64{0, 0, 0}

	r := cornerRatio(a, b, c, DefaultCornerMaxRatio, DefaultCornerVelocityRatio)
	if !almostEqual(r, math.Pi, 1e-6) {
		t.Errorf("full-reversal corner ratio = %v, want pi (same as straight line)", r)
	}
}

func TestCornerRatioDegenerateNeighbourClampsToFloor(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, 0, 0}
	c := []float64{1, 0, 0} // c == b, zero-length outgoing segment -> NaN guard

	r := cornerRatio(a, b, c, DefaultCornerMaxRatio, DefaultCornerVelocityRatio)
	if !almostEqual(r, DefaultCornerMaxRatio, 1e-6) {
		t.Errorf("degenerate-neighbour corner ratio = %v, want floor %v", r, DefaultCornerMaxRatio)
	}
}

func TestCornerRatioNeverBelowFloor(t *testing.T) {
	angles := [][3][]float64{
		{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		{{0, 0, 0}, {1, 0, 0}, {2, 1, 0}},
		{{0, 0, 0}, {1, 0, 0}, {1, -1, 0}},
	}
	for _, tri := range angles {
		r := cornerRatio(tri[0], tri[1], tri[2], DefaultCornerMaxRatio, DefaultCornerVelocityRatio)
		if r < DefaultCornerMaxRatio-1e-9 {
			t.Errorf("corner ratio %v fell below floor %v", r, DefaultCornerMaxRatio)
		}
	}
}
