package motion

import "gonum.org/v1/gonum/floats"

// Segment is one scheduled sub-segment of a leg: a Polynomial plus the axis
// unit vector, target velocity, sample count and per-sample period needed
// to evaluate position/velocity/acceleration setpoints at any sample index.
//
// Coast segments (IsCoast) do not use the polynomial at all for position
// and velocity — they move at the constant scalar speed VTarget, starting
// from the polynomial's own P0 offset (the segment's "coast origin
// scalar"), exactly the way the original MotionObject reused a single p_0
// field for both purposes.
type Segment struct {
	Poly         Polynomial
	Unit         []float64 // unit vector of the leg, length N
	PrevSetpoint []float64 // Cartesian origin of this segment (leg start)
	VTarget      float64
	Dt           float64
	N            int
	IsCoast      bool
}

// zeroSegment is the segment returned on queue underflow: zero samples, all
// setpoints evaluate to zero along an all-zero unit vector.
func zeroSegment(dim int) Segment {
	return Segment{Unit: make([]float64, dim), PrevSetpoint: make([]float64, dim)}
}

func (s Segment) velocityScalar(t float64) float64 {
	if s.IsCoast {
		return s.VTarget
	}
	return s.Poly.Velocity(t)
}

func (s Segment) positionScalar(t float64) float64 {
	if s.IsCoast {
		return s.Poly.P0 + s.VTarget*t
	}
	return s.Poly.Position(t)
}

func (s Segment) accelerationScalar(t float64) float64 {
	if s.IsCoast {
		return 0
	}
	return s.Poly.Acceleration(t)
}

// VelocityAt returns the per-axis velocity setpoint at sample index k.
func (s Segment) VelocityAt(k int) []float64 {
	out := make([]float64, len(s.Unit))
	copy(out, s.Unit)
	floats.Scale(s.velocityScalar(float64(k)*s.Dt), out)
	return out
}

// PositionAt returns the per-axis position setpoint at sample index k.
func (s Segment) PositionAt(k int) []float64 {
	scalar := s.positionScalar(float64(k) * s.Dt)
	out := make([]float64, len(s.Unit))
	for i := range out {
		out[i] = s.PrevSetpoint[i] + scalar*s.Unit[i]
	}
	return out
}

// AccelerationAt returns the per-axis acceleration setpoint at sample index k.
func (s Segment) AccelerationAt(k int) []float64 {
	out := make([]float64, len(s.Unit))
	copy(out, s.Unit)
	floats.Scale(s.accelerationScalar(float64(k)*s.Dt), out)
	return out
}
