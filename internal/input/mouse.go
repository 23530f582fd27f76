package input

// MouseTracker turns absolute cursor samples into accumulated deltas.
// The first sample after Reset only primes the last position so that
// capturing the cursor does not produce a jump.
type MouseTracker struct {
	first bool
	lastX float64
	lastY float64

	dx, dy float64
}

// Reset forgets the last position
func (t *MouseTracker) Reset() {
	t.first = true
	t.dx, t.dy = 0, 0
}

// Sample adds the offset from the previous sample. Screen Y grows downward,
// so dy is inverted: moving the mouse up yields a positive dy.
func (t *MouseTracker) Sample(xpos, ypos float64) {
	if t.first {
		t.lastX = xpos
		t.lastY = ypos
		t.first = false
		return
	}

	t.dx += xpos - t.lastX
	t.dy += t.lastY - ypos
	t.lastX = xpos
	t.lastY = ypos
}

// Drain returns and clears the accumulated offset
func (t *MouseTracker) Drain() (dx, dy float64) {
	dx, dy = t.dx, t.dy
	t.dx, t.dy = 0, 0
	return dx, dy
}
