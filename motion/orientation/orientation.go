// Package orientation adapts a 4-wide motion.Planner to plan and sample
// angular motion expressed as roll/pitch/yaw Euler angles, by driving the
// underlying planner through quaternion space instead of Cartesian space.
//
// This mirrors the original source's Orientation<T> wrapper around
// Motion<T,4>: orientation setpoints are converted to a unit quaternion,
// fed through the planner as an ordinary 4-dimensional waypoint, and the
// sampled quaternion setpoints are converted back to Euler angles.
package orientation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/basb227/motionlib/motion"
)

// Planner wraps a 4-dimensional motion.Planner whose axes are the w, x, y, z
// components of a quaternion, rather than Cartesian coordinates.
type Planner struct {
	inner *motion.Planner
}

// New constructs an orientation Planner sampling at hz, starting from the
// identity orientation (zero roll/pitch/yaw).
func New(hz int) *Planner {
	return &Planner{inner: motion.NewPlannerAt(hz, []float64{1, 0, 0, 0})}
}

// NewWithConfig is New with an explicit motion.Config.
func NewWithConfig(cfg motion.Config) *Planner {
	return &Planner{inner: motion.NewPlannerWithConfigAt(cfg, []float64{1, 0, 0, 0})}
}

// SetOrientation enqueues a target orientation, given as roll, pitch, yaw
// (radians), using the standard feedrate/acceleration defaults.
func (p *Planner) SetOrientation(roll, pitch, yaw float64) {
	q := toQuaternion(roll, pitch, yaw)
	p.inner.PlanMotion([]float64{q.Real, q.Imag, q.Jmag, q.Kmag})
}

// SetOrientationVA is SetOrientation with an explicit angular velocity and
// acceleration cap.
func (p *Planner) SetOrientationVA(roll, pitch, yaw, velocity, acceleration float64) {
	q := toQuaternion(roll, pitch, yaw)
	p.inner.PlanMotionVA([]float64{q.Real, q.Imag, q.Jmag, q.Kmag}, velocity, acceleration)
}

// AngularVelocitySetpoint returns the current sample's roll/pitch/yaw
// angular velocity, derived from the underlying quaternion-space velocity
// setpoint.
func (p *Planner) AngularVelocitySetpoint() (roll, pitch, yaw float64) {
	v := p.inner.GetVelocitySetpoint()
	return toEulerAngles(quat.Number{Real: v[0], Imag: v[1], Jmag: v[2], Kmag: v[3]})
}

// AngularPositionSetpoint returns the current sample's roll/pitch/yaw
// orientation, derived from the underlying quaternion-space position
// setpoint.
func (p *Planner) AngularPositionSetpoint() (roll, pitch, yaw float64) {
	q := p.inner.GetPositionSetpoint()
	return toEulerAngles(quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]})
}

// IncrementMotionSample advances the sample index and reports whether
// angular motion is still in progress.
func (p *Planner) IncrementMotionSample() bool {
	return p.inner.IncrementMotionSample()
}

// MotionQueueSize returns the number of queued orientation segments.
func (p *Planner) MotionQueueSize() int {
	return p.inner.MotionQueueSize()
}

// toQuaternion converts roll/pitch/yaw (radians) into a unit quaternion.
func toQuaternion(roll, pitch, yaw float64) quat.Number {
	cy, sy := math.Cos(yaw*0.5), math.Sin(yaw*0.5)
	cp, sp := math.Cos(pitch*0.5), math.Sin(pitch*0.5)
	cr, sr := math.Cos(roll*0.5), math.Sin(roll*0.5)

	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// toEulerAngles converts a unit quaternion into roll/pitch/yaw (radians).
func toEulerAngles(q quat.Number) (roll, pitch, yaw float64) {
	sinrCosp := 2 * (q.Real*q.Imag + q.Jmag*q.Kmag)
	cosrCosp := 1 - 2*(q.Imag*q.Imag+q.Jmag*q.Jmag)
	roll = math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.Real*q.Jmag - q.Kmag*q.Imag)
	if math.Abs(sinp) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}

	sinyCosp := 2 * (q.Real*q.Kmag + q.Imag*q.Jmag)
	cosyCosp := 1 - 2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag)
	yaw = math.Atan2(sinyCosp, cosyCosp)

	return roll, pitch, yaw
}
