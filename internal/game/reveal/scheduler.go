// Package reveal decides when the next cell of a solved path becomes visible.
// It holds no state and never waits: callers pass in the clock.
package reveal

import "time"

// DefaultInterval is the delay between two revealed path cells.
const DefaultInterval = 60 * time.Millisecond

// Due reports whether enough time has passed since lastReveal to show
// another cell. A non-positive interval is always due.
func Due(elapsed, lastReveal, interval time.Duration) bool {
	if interval <= 0 {
		return true
	}
	return elapsed-lastReveal >= interval
}

// Advance returns the number of visible cells and the time of the latest
// reveal. step is the count of cells already visible. When a reveal is due,
// step grows by one, capped at pathLen, and revealedAt becomes elapsed;
// otherwise both are returned unchanged.
func Advance(elapsed, lastReveal, interval time.Duration, step, pathLen int) (int, time.Duration) {
	if step >= pathLen || !Due(elapsed, lastReveal, interval) {
		return min(step, max(pathLen, 0)), lastReveal
	}
	return step + 1, elapsed
}

// Done reports whether every cell of the path is visible.
func Done(step, pathLen int) bool {
	return step >= pathLen
}
