package motion

import "math"

// Planner is the composed trajectory generator: a lookahead buffer, a
// segment queue, the leg-decomposition logic, and a sampler — all owned by
// a single value. The original source split these across a template
// inheritance chain (Motion <- MotionPlanner <- {MotionHandler,
// SetpointBuffer}); per the REDESIGN FLAGS this is expressed as composition
// instead, since none of the "virtual" methods were ever overridden outside
// that chain.
//
// A Planner is not safe for concurrent use: all state (the lookahead
// buffer, the queue, the v_enter/error carry, and the sampler's current
// segment/sample index) is mutated in place by the caller's goroutine.
type Planner struct {
	cfg Config
	dim int
	dt  float64

	buf   lookaheadBuffer
	queue SegmentQueue

	// Carry state between legs.
	vEnter float64
	errAcc float64

	// Sampler state.
	current          Segment
	motionPos        int
	motionInProgress bool
}

// NewPlanner constructs a dim-dimensional planner sampling at hz with the
// standard feedrate/acceleration/corner defaults.
func NewPlanner(dim, hz int) *Planner {
	return NewPlannerWithConfig(dim, DefaultConfig(hz))
}

// NewPlannerWithConfig constructs a dim-dimensional planner with an
// explicit configuration.
func NewPlannerWithConfig(dim int, cfg Config) *Planner {
	cfg.applyDefaults()
	return &Planner{
		cfg:     cfg,
		dim:     dim,
		dt:      1.0 / float64(cfg.Hz),
		buf:     newLookaheadBuffer(dim),
		current: zeroSegment(dim),
	}
}

// NewPlannerAt constructs a planner whose lookahead buffer is pre-seeded
// with initialPosition in all three slots, so the first planned leg starts
// from that point. The dimension is inferred from len(initialPosition).
func NewPlannerAt(hz int, initialPosition []float64) *Planner {
	return NewPlannerWithConfigAt(DefaultConfig(hz), initialPosition)
}

// NewPlannerWithConfigAt is NewPlannerAt with an explicit configuration.
func NewPlannerWithConfigAt(cfg Config, initialPosition []float64) *Planner {
	p := NewPlannerWithConfig(len(initialPosition), cfg)
	p.buf.seed(Waypoint{Setpoint: append([]float64(nil), initialPosition...)})
	return p
}

// SetHz reconfigures the sampling rate. Only subsequently planned segments
// use the new dt; segments already queued keep the dt they were built with.
func (p *Planner) SetHz(hz int) {
	p.cfg.Hz = hz
	p.dt = 1.0 / float64(hz)
}

// PlanMotion enqueues a waypoint using the standard feedrate/acceleration
// defaults, with the exit velocity derived from the corner angle.
func (p *Planner) PlanMotion(pos []float64) {
	p.PlanMotionVA(pos, p.cfg.StandardFeedrate, p.cfg.StandardAccel)
}

// PlanMotionVA enqueues a waypoint with an explicit velocity/acceleration
// cap, with the exit velocity derived from the corner angle.
func (p *Planner) PlanMotionVA(pos []float64, velocity, acceleration float64) {
	p.plan(Waypoint{Setpoint: pos, Velocity: velocity, Acceleration: acceleration}, nil)
}

// PlanMotionFinal enqueues a waypoint whose leg's exit velocity is forced
// to vFinal instead of the corner-derived value.
func (p *Planner) PlanMotionFinal(pos []float64, velocity, acceleration, vFinal float64) {
	p.plan(Waypoint{Setpoint: pos, Velocity: velocity, Acceleration: acceleration}, &vFinal)
}

func (p *Planner) plan(w Waypoint, vFinal *float64) {
	p.buf.shift(w)
	p.planLeg(vFinal)
}

// planLeg computes and enqueues the segments for the leg W0 -> W1, using W2
// only to estimate the exit corner angle.
func (p *Planner) planLeg(vFinalOverride *float64) {
	w0, w1, w2 := p.buf.w[0], p.buf.w[1], p.buf.w[2]

	delta := subVec(w1.Setpoint, w0.Setpoint)
	length := normVec(delta)
	if length < 1e-9 {
		return
	}
	unit := unitVector(delta)

	var vExit float64
	if vFinalOverride != nil {
		vExit = *vFinalOverride
	} else {
		vExit = w1.Velocity * cornerRatio(w0.Setpoint, w1.Setpoint, w2.Setpoint, p.cfg.CornerMaxRatio, p.cfg.CornerVelocityRatio)
	}

	vTarget := w1.Velocity
	aTarget := w1.Acceleration

	tAcc := p.calcAccelTime(vTarget-p.vEnter, aTarget)
	pAcc := math.Abs(p.calcAccelPosition(p.vEnter, vTarget, tAcc))

	tDec := p.calcAccelTime(vExit-vTarget, aTarget)
	pDec := math.Abs(p.calcAccelPosition(vTarget, vExit, tDec))

	if length < 1 || (pAcc+pDec) > length {
		p.transition(length, p.vEnter, vTarget, aTarget, unit, vExit, tAcc, w0.Setpoint)
	} else {
		p.threePhaseMotion(p.vEnter, vTarget, vExit, length, pAcc, pDec, tAcc, tDec, unit, w0.Setpoint)
	}

	p.vEnter = vExit
}

// calcAccelTime returns the ramp duration for a dv change whose peak
// acceleration is aTarget, truncated down to a whole multiple of dt
// (§4.3.1). Because of the truncation, the peak acceleration of the
// returned duration can slightly exceed aTarget.
func (p *Planner) calcAccelTime(dv, aTarget float64) float64 {
	var poly Polynomial
	poly.FitConstantsSimple(dv, 1.0)
	return math.Trunc(math.Abs(poly.Acceleration(0.5)/aTarget)*float64(p.cfg.Hz)) * p.dt
}

// calcAccelPosition fits (v0, v1, t) and returns the resulting position. A
// non-positive t means the caller already determined no ramp is needed (v0
// and v1 are already equal, within the sampling resolution) — fitting a
// polynomial over zero duration would divide by t^3..t^6 == 0, so that case
// is reported as covering zero position instead of calling FitConstants.
func (p *Planner) calcAccelPosition(v0, v1, t float64) float64 {
	if t <= 0 {
		return 0
	}
	var poly Polynomial
	poly.FitConstants(v0, v1, t)
	return poly.Position(t)
}

// threePhaseMotion emits accelerate/coast/decelerate segments for a leg
// with enough distance to reach v_target (§4.3.2). The accelerate and
// decelerate phases are only emitted when their duration is positive —
// tAcc/tDec is zero when vEnter/vExit already equals vTarget, or differs
// from it by so little that truncation to whole samples leaves no sample;
// no segment is enqueued for that phase.
func (p *Planner) threePhaseMotion(vEnter, vTarget, vExit, length, pAcc, pDec, tAcc, tDec float64, unit, origin []float64) {
	if tAcc > 0 {
		var accel Polynomial
		accel.FitConstants(vEnter, vTarget, tAcc)
		p.enqueue(Segment{
			Poly: accel, Unit: unit, PrevSetpoint: origin,
			VTarget: vTarget, Dt: p.dt, N: int(math.Floor(tAcc * float64(p.cfg.Hz))),
		})
	}

	tCoast := math.Trunc(math.Abs((length-pAcc-pDec-p.errAcc)/vTarget)*float64(p.cfg.Hz)) * p.dt
	pCoast := tCoast * vTarget
	p.errAcc = length - pAcc - pDec - pCoast

	var coast Polynomial
	coast.P0 = pAcc
	p.enqueue(Segment{
		Poly: coast, Unit: unit, PrevSetpoint: origin,
		VTarget: vTarget, Dt: p.dt, N: int(math.Floor(tCoast * float64(p.cfg.Hz))), IsCoast: true,
	})

	if tDec > 0 {
		var decel Polynomial
		decel.FitConstants(vTarget, vExit, tDec)
		decel.P0 = pAcc + pCoast
		p.enqueue(Segment{
			Poly: decel, Unit: unit, PrevSetpoint: origin,
			VTarget: vTarget, Dt: p.dt, N: int(math.Floor(tDec * float64(p.cfg.Hz))),
		})
	}
}

// transition approximates a leg too short to reach v_target with two
// symmetric sub-segments, each covering length/2 (§4.3.3). Unlike the
// accelerate/decelerate phases of threePhaseMotion, neither sub-segment here
// can simply be skipped when its estimated ramp duration is zero — each one
// still has to cover its half of the leg's distance. So a zero (or
// negative) duration is floored to one sample period instead, which is
// enough to keep FitConstants from being called with t == 0 (vEnter/vTarget
// or vTarget/vExit already equal, which would otherwise divide t^3..t^6 ==
// 0 into a zero numerator and yield NaN).
func (p *Planner) transition(length, vEnter, vTarget, aTarget float64, unit []float64, vExit, tAcc float64, origin []float64) {
	half := length * 0.5

	if tAcc <= 0 {
		tAcc = p.dt
	}

	var first Polynomial
	first.FitConstants(vEnter, vTarget, tAcc)
	ratio := math.Abs((half - p.errAcc) / first.Position(tAcc))

	scaledTarget := vTarget * ratio
	t := tAcc * ratio
	if t <= 0 {
		t = p.dt
	}

	first.FitConstants(vEnter, scaledTarget, t)
	scaledTarget *= half / first.Position(t)
	first.FitConstants(vEnter, scaledTarget, t)

	p.errAcc = first.Position(t) - half
	p0Ref := first.Position(t)

	p.enqueue(Segment{
		Poly: first, Unit: unit, PrevSetpoint: origin,
		VTarget: vTarget, Dt: p.dt, N: int(math.Floor(t * float64(p.cfg.Hz))),
	})

	t2 := p.calcAccelTime(vTarget-vExit, aTarget)
	if t2 <= 0 {
		t2 = p.dt
	}

	var second Polynomial
	second.FitConstants(vExit, vTarget, t2)
	ratio2 := math.Abs((half - p.errAcc) / second.Position(t2))
	t2 *= ratio2
	if t2 <= 0 {
		t2 = p.dt
	}

	scaledExit := vExit
	second.FitConstants(vTarget, scaledExit, t2)
	scaledExit *= half / second.Position(t2)
	second.FitConstants(vTarget, scaledExit, t2)

	p.errAcc = second.Position(t2) - half
	second.P0 = p0Ref

	p.enqueue(Segment{
		Poly: second, Unit: unit, PrevSetpoint: origin,
		VTarget: vTarget, Dt: p.dt, N: int(math.Floor(t2 * float64(p.cfg.Hz))),
	})
}

func (p *Planner) enqueue(s Segment) {
	p.queue.Push(s)
}

// ensureCurrent advances the sampler to the next queued segment once the
// current one is exhausted (§4.5).
func (p *Planner) ensureCurrent() {
	if p.motionPos < p.current.N {
		return
	}
	if !p.queue.Empty() {
		p.current = p.queue.Pop(p.dim)
		p.motionPos = 0
		p.motionInProgress = true
		return
	}
	p.motionInProgress = false
	p.motionPos = p.current.N + 1
}

// GetVelocitySetpoint returns the per-axis velocity setpoint for the
// current sample.
func (p *Planner) GetVelocitySetpoint() []float64 {
	p.ensureCurrent()
	return p.current.VelocityAt(p.motionPos)
}

// GetPositionSetpoint returns the per-axis position setpoint for the
// current sample.
func (p *Planner) GetPositionSetpoint() []float64 {
	p.ensureCurrent()
	return p.current.PositionAt(p.motionPos)
}

// GetAccelerationSetpoint returns the per-axis acceleration setpoint for
// the current sample.
func (p *Planner) GetAccelerationSetpoint() []float64 {
	p.ensureCurrent()
	return p.current.AccelerationAt(p.motionPos)
}

// IncrementMotionSample advances the sample index and reports whether a
// motion is still in progress.
func (p *Planner) IncrementMotionSample() bool {
	p.motionPos++
	return p.motionInProgress
}

// MotionQueueSize returns the number of segments still queued (not
// counting the segment currently being sampled).
func (p *Planner) MotionQueueSize() int {
	return p.queue.Len()
}

// MotionLength returns the sum of (n+1) over all segments still queued
// (the segment currently being sampled, if any, is not counted — it was
// already popped off the queue).
func (p *Planner) MotionLength() int {
	return p.queue.TotalSamples()
}
