package motion

// Waypoint is a user-supplied Cartesian target.
type Waypoint struct {
	Setpoint     []float64 // absolute Cartesian target, length N
	Velocity     float64   // scalar speed cap along the path
	Acceleration float64   // scalar acceleration magnitude cap
}

// lookaheadBuffer is a length-3 sliding window of waypoints. Shifting in a
// new waypoint discards the oldest. Before the buffer has seen at least two
// real waypoints, W0 and W1 are still the initial waypoint (zero, or the
// seeded initial position), so the leg they
// describe has zero length and planLeg's degenerate-leg check drops it —
// no separate "have we seen enough calls" bookkeeping is needed.
type lookaheadBuffer struct {
	w [3]Waypoint
}

func newLookaheadBuffer(dim int) lookaheadBuffer {
	zero := Waypoint{Setpoint: make([]float64, dim)}
	return lookaheadBuffer{w: [3]Waypoint{zero, zero, zero}}
}

// seed fills all three slots with w, so the very first planned leg has a
// well-defined origin.
func (b *lookaheadBuffer) seed(w Waypoint) {
	b.w[0], b.w[1], b.w[2] = w, w, w
}

// shift appends w, discarding the oldest buffered waypoint.
func (b *lookaheadBuffer) shift(w Waypoint) {
	b.w[0] = b.w[1]
	b.w[1] = b.w[2]
	b.w[2] = w
}
