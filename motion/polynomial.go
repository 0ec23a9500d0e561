package motion

// polPC is the 1/420 scaling constant used by Position, matching the
// pol_p_c constant in the original Polynomial template.
const polPC = 1.0 / 420.0

// Polynomial holds the six constants of a scalar 7th-order position
// profile: p(t) = p0 + v0*t + c3*t^4/4 + c4*t^5/5 + c5*t^6/6 + c6*t^7/7.
// Its derivative is a zero-jerk-boundary velocity ramp; see FitConstants.
type Polynomial struct {
	C3, C4, C5, C6 float64
	V0             float64
	P0             float64
}

// FitConstants fits the constants so that Velocity(0) == vs, Velocity(t) ==
// vf, and both boundary accelerations are zero, with the midpoint velocity
// (the velocity at t/2) placed at the mean of vs and vf. The original
// source's 3-argument calc_constants_v instead derives the midpoint from
// half the absolute span between vs and vf, which produces a velocity dip
// below min(vs, vf) whenever vs and vf share a sign (see DESIGN.md); the
// mean is used here to match that explicit midpoint formula.
func (p *Polynomial) FitConstants(vs, vf, t float64) {
	vv := (vs + vf) * 0.5
	p.fit(vs, vv, vf, t)
}

// FitConstantsMidpoint fits the constants with an explicit midpoint
// velocity vv, matching the original source's 4-argument calc_constants_v
// overload. spec.md's distillation dropped this variant; it is restored
// here since callers occasionally need to pin the midpoint rather than
// have it derived from vs/vf.
func (p *Polynomial) FitConstantsMidpoint(vs, vv, vf, t float64) {
	p.fit(vs, vv, vf, t)
}

func (p *Polynomial) fit(vs, vv, vf, t float64) {
	p.V0 = vs

	d0 := vv - vs
	d1 := vf - vs

	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	t5 := t4 * t
	t6 := t5 * t

	p.C3 = 2 * (32*d0 - 11*d1) / t3
	p.C4 = -3 * (64*d0 - 27*d1) / t4
	p.C5 = 3 * (64*d0 - 30*d1) / t5
	p.C6 = -32 * (2*d0 - d1) / t6
}

// FitConstantsSimple fits the constants assuming a starting velocity of
// zero and a midpoint velocity of vf/2 — used only to derive timing via
// calcAccelTime, matching the original 2-argument calc_constants.
func (p *Polynomial) FitConstantsSimple(vf, t float64) {
	vv := vf * 0.5
	p.fit(0, vv, vf, t)
}

// Position evaluates the 7th-order position polynomial at time t.
func (p Polynomial) Position(t float64) float64 {
	return polPC*t*(105*p.C3*t*t*t+84*p.C4*t*t*t*t+70*p.C5*t*t*t*t*t+60*p.C6*t*t*t*t*t*t+420*p.V0) + p.P0
}

// Velocity evaluates the velocity ramp at time t.
func (p Polynomial) Velocity(t float64) float64 {
	return t*t*t*(t*(t*(p.C6*t+p.C5)+p.C4)+p.C3) + p.V0
}

// Acceleration evaluates the acceleration at time t.
func (p Polynomial) Acceleration(t float64) float64 {
	return t * t * (t*(6*p.C6*t*t+5*p.C5*t+4*p.C4) + 3*p.C3)
}
