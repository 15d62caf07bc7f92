package components

import "time"

// Timer is a repeating countdown owned by a single entity.
type Timer struct {
	Elapsed  time.Duration
	Duration time.Duration
}

// Tick advances the timer and reports whether it finished during this call.
// A finish is reported at most once per call even when dt spans several
// durations; the surplus is folded back into Elapsed modulo Duration.
func (t *Timer) Tick(dt time.Duration) bool {
	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return false
	}
	if t.Duration > 0 {
		t.Elapsed %= t.Duration
	} else {
		t.Elapsed = 0
	}
	return true
}

func (t *Timer) Reset() {
	t.Elapsed = 0
}

// SetDuration changes the duration without touching elapsed time.
func (t *Timer) SetDuration(d time.Duration) {
	t.Duration = d
}
